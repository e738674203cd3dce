package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"guid-gatherer/types"
	"guid-gatherer/utils"
	"guid-gatherer/validation"
)

// ResourceStore is the persistence contract for one entity kind.
type ResourceStore[M any] interface {
	Create(ctx context.Context, record *M) error
	FindAll(ctx context.Context) ([]M, error)
	FindByID(ctx context.Context, id types.SnowflakeID) (*M, error)
	Save(ctx context.Context, record *M) error
	Delete(ctx context.Context, id types.SnowflakeID) error
	CreateBatch(ctx context.Context, records []M) error
}

// Resource describes an entity kind to the generic controller.
type Resource[M any, P any] struct {
	Label   string
	Sheet   string
	Columns []string
	Apply   func(record *M, payload *P)
	// ListItem, when set, reshapes each listed record with its 1-based
	// position in the response.
	ListItem func(record *M, sNo int) interface{}
}

type ResourceController[M any, P any] struct {
	Store    ResourceStore[M]
	Resource Resource[M, P]
}

func NewResourceController[M any, P any](store ResourceStore[M], resource Resource[M, P]) *ResourceController[M, P] {
	return &ResourceController[M, P]{Store: store, Resource: resource}
}

func (c *ResourceController[M, P]) Create(ctx *fiber.Ctx) error {
	var payload P
	if err := utils.DecodeStrict(ctx.Body(), &payload); err != nil {
		return err
	}

	var record M
	c.Resource.Apply(&record, &payload)
	if err := validation.Struct(&record); err != nil {
		return err
	}

	if err := c.Store.Create(ctx.UserContext(), &record); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(&record)
}

func (c *ResourceController[M, P]) GetAll(ctx *fiber.Ctx) error {
	records, err := c.Store.FindAll(ctx.UserContext())
	if err != nil {
		return err
	}

	if c.Resource.ListItem == nil {
		return ctx.JSON(records)
	}

	items := make([]interface{}, 0, len(records))
	for i := range records {
		items = append(items, c.Resource.ListItem(&records[i], i+1))
	}
	return ctx.JSON(items)
}

func (c *ResourceController[M, P]) GetByID(ctx *fiber.Ctx) error {
	record, err := c.find(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(record)
}

// Update replaces the supplied fields only and validates the merged record
// with the create rules.
func (c *ResourceController[M, P]) Update(ctx *fiber.Ctx) error {
	record, err := c.find(ctx)
	if err != nil {
		return err
	}

	var payload P
	if err := utils.DecodeStrict(ctx.Body(), &payload); err != nil {
		return err
	}

	c.Resource.Apply(record, &payload)
	if err := validation.Struct(record); err != nil {
		return err
	}

	if err := c.Store.Save(ctx.UserContext(), record); err != nil {
		return c.notFound(err)
	}
	return ctx.JSON(record)
}

func (c *ResourceController[M, P]) Delete(ctx *fiber.Ctx) error {
	id, err := types.ParseSnowflakeID(ctx.Params("id"))
	if err != nil {
		return &utils.NotFoundError{Resource: c.Resource.Label}
	}

	if err := c.Store.Delete(ctx.UserContext(), id); err != nil {
		return c.notFound(err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": c.Resource.Label + " deleted successfully",
	})
}

func (c *ResourceController[M, P]) find(ctx *fiber.Ctx) (*M, error) {
	id, err := types.ParseSnowflakeID(ctx.Params("id"))
	if err != nil {
		return nil, &utils.NotFoundError{Resource: c.Resource.Label}
	}

	record, err := c.Store.FindByID(ctx.UserContext(), id)
	if err != nil {
		return nil, c.notFound(err)
	}
	return record, nil
}

func (c *ResourceController[M, P]) notFound(err error) error {
	if errors.Is(err, utils.ErrRecordNotFound) {
		return &utils.NotFoundError{Resource: c.Resource.Label}
	}
	return err
}
