package main

import (
	"errors"

	"github.com/learnhouse-dev/learnhouse/shared/api"
)

type DeleteCollectionCmd struct {
	Args struct {
		UUID string `positional-arg-name:"UUID"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *DeleteCollectionCmd) Execute([]string) error {
	client, err := c.app.client()
	if err != nil {
		return err
	}
	return c.app.printMutation(client.DeleteCollection(c.app.ctx, c.Args.UUID, c.app.opts.Token))
}

type CreateCollectionCmd struct {
	Name        string   `long:"name" required:"yes" description:"collection name"`
	Description string   `long:"description" description:"collection description"`
	Public      bool     `long:"public" description:"make the collection public"`
	OrgID       int64    `long:"org-id" description:"owning organization id"`
	Courses     []string `long:"course" description:"course uuid, may be repeated"`

	app *app
}

func (c *CreateCollectionCmd) Execute([]string) error {
	client, err := c.app.client()
	if err != nil {
		return err
	}
	req := api.CreateCollectionRequest{
		Name:        c.Name,
		Description: c.Description,
		Public:      c.Public,
		OrgID:       c.OrgID,
		Courses:     c.Courses,
	}
	return c.app.printMutation(client.CreateCollection(c.app.ctx, req, c.app.opts.Token))
}

type GetCollectionCmd struct {
	Args struct {
		UUID string `positional-arg-name:"UUID"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *GetCollectionCmd) Execute([]string) error {
	client, err := c.app.client()
	if err != nil {
		return err
	}
	collection, err := client.GetCollectionByID(c.app.ctx, c.Args.UUID, c.app.opts.Token, nil)
	if err != nil {
		return err
	}
	return c.app.print(collection)
}

type OrgCollectionsCmd struct {
	Args struct {
		OrgID string `positional-arg-name:"ORG"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *OrgCollectionsCmd) Execute([]string) error {
	client, err := c.app.client()
	if err != nil {
		return err
	}
	collections, err := client.GetOrgCollections(c.app.ctx, c.Args.OrgID, c.app.opts.Token, nil)
	if err != nil {
		return err
	}
	return c.app.print(collections)
}

type UpdatePasswordCmd struct {
	Old  string `long:"old" env:"LEARNHOUSE_OLD_PASSWORD" description:"current password"`
	New  string `long:"new" env:"LEARNHOUSE_NEW_PASSWORD" description:"new password"`
	Args struct {
		UserID string `positional-arg-name:"USER"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *UpdatePasswordCmd) Execute([]string) error {
	switch {
	case c.Old == "":
		return errors.New("--old or LEARNHOUSE_OLD_PASSWORD is required")
	case c.New == "":
		return errors.New("--new or LEARNHOUSE_NEW_PASSWORD is required")
	}

	client, err := c.app.client()
	if err != nil {
		return err
	}
	data := api.UpdatePasswordRequest{OldPassword: c.Old, NewPassword: c.New}
	return c.app.printMutation(client.UpdatePassword(c.app.ctx, c.Args.UserID, data, c.app.opts.Token))
}
