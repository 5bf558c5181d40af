package api

import (
	"context"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/cache"
	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// FileParam is one file attached to a mutation. A nil *FileParam on a
// params struct means "keep the asset already stored for this record".
type FileParam struct {
	Filename string
	Content  io.Reader
}

func attach(form *transport.Form, field string, f *FileParam) {
	if f != nil {
		form.File(field, f.Filename, f.Content)
	}
}

// CategoryParams is the payload for creating or updating a category
type CategoryParams struct {
	Name        string
	Description string
	Image       *FileParam
}

func (p CategoryParams) form() *transport.Form {
	form := transport.NewForm().
		Set("name", p.Name).
		Set("description", p.Description)
	attach(form, "image", p.Image)
	return form
}

// Categories synchronizes the category collection
type Categories struct {
	*Service[models.Category]
}

// NewCategories creates the category synchronizer
func NewCategories(client *transport.Client, inv *cache.Invalidator, log *zap.Logger) *Categories {
	return &Categories{NewService[models.Category](client, inv, cache.TagCategory, "/admin/categories", log)}
}

// Create adds a category
func (c *Categories) Create(ctx context.Context, p CategoryParams) (models.Category, error) {
	return c.Service.Create(ctx, p.form())
}

// Update modifies a category by id
func (c *Categories) Update(ctx context.Context, id string, p CategoryParams) (models.Category, error) {
	return c.Service.Update(ctx, id, p.form())
}

// SubcategoryParams is the payload for creating or updating a subcategory
type SubcategoryParams struct {
	Name        string
	Description string
	CategoryID  string
	Image       *FileParam
}

func (p SubcategoryParams) form() *transport.Form {
	form := transport.NewForm().
		Set("name", p.Name).
		Set("description", p.Description).
		Set("category", p.CategoryID)
	attach(form, "image", p.Image)
	return form
}

// Subcategories synchronizes the subcategory collection
type Subcategories struct {
	*Service[models.Subcategory]
}

// NewSubcategories creates the subcategory synchronizer
func NewSubcategories(client *transport.Client, inv *cache.Invalidator, log *zap.Logger) *Subcategories {
	return &Subcategories{NewService[models.Subcategory](client, inv, cache.TagSubcategory, "/admin/subcategories", log)}
}

// Create adds a subcategory
func (c *Subcategories) Create(ctx context.Context, p SubcategoryParams) (models.Subcategory, error) {
	return c.Service.Create(ctx, p.form())
}

// Update modifies a subcategory by id
func (c *Subcategories) Update(ctx context.Context, id string, p SubcategoryParams) (models.Subcategory, error) {
	return c.Service.Update(ctx, id, p.form())
}

// VideoParams is the payload for creating or updating a video
type VideoParams struct {
	Title         string
	Description   string
	CategoryID    string
	SubcategoryID string
	Platform      string
	YoutubeURL    string
	IsPublished   *bool
	File          *FileParam
	Thumbnail     *FileParam
}

func (p VideoParams) form() *transport.Form {
	form := transport.NewForm().
		Set("title", p.Title).
		Set("description", p.Description)
	if p.CategoryID != "" {
		form.Set("category", p.CategoryID)
	}
	if p.SubcategoryID != "" {
		form.Set("subcategory", p.SubcategoryID)
	}
	if p.Platform != "" {
		form.Set("platform", p.Platform)
	}
	if p.YoutubeURL != "" {
		form.Set("youtubeUrl", p.YoutubeURL)
	}
	if p.IsPublished != nil {
		form.Set("isPublished", strconv.FormatBool(*p.IsPublished))
	}
	attach(form, "video", p.File)
	attach(form, "thumbnail", p.Thumbnail)
	return form
}

// Videos synchronizes the video collection
type Videos struct {
	*Service[models.Video]
}

// NewVideos creates the video synchronizer
func NewVideos(client *transport.Client, inv *cache.Invalidator, log *zap.Logger) *Videos {
	return &Videos{NewService[models.Video](client, inv, cache.TagVideo, "/admin/videos", log)}
}

// Create adds a video
func (c *Videos) Create(ctx context.Context, p VideoParams) (models.Video, error) {
	return c.Service.Create(ctx, p.form())
}

// Update modifies a video by id
func (c *Videos) Update(ctx context.Context, id string, p VideoParams) (models.Video, error) {
	return c.Service.Update(ctx, id, p.form())
}

// ShortParams is the payload for creating or updating a short
type ShortParams struct {
	Title       string
	Description string
	Platform    string
	YoutubeURL  string
	IsPublished *bool
	File        *FileParam
	Thumbnail   *FileParam
}

func (p ShortParams) form() *transport.Form {
	form := transport.NewForm().
		Set("title", p.Title).
		Set("description", p.Description)
	if p.Platform != "" {
		form.Set("platform", p.Platform)
	}
	if p.YoutubeURL != "" {
		form.Set("youtubeUrl", p.YoutubeURL)
	}
	if p.IsPublished != nil {
		form.Set("isPublished", strconv.FormatBool(*p.IsPublished))
	}
	attach(form, "video", p.File)
	attach(form, "thumbnail", p.Thumbnail)
	return form
}

// Shorts synchronizes the short-form video collection
type Shorts struct {
	*Service[models.Short]
}

// NewShorts creates the shorts synchronizer
func NewShorts(client *transport.Client, inv *cache.Invalidator, log *zap.Logger) *Shorts {
	return &Shorts{NewService[models.Short](client, inv, cache.TagShort, "/admin/shorts", log)}
}

// Create adds a short
func (c *Shorts) Create(ctx context.Context, p ShortParams) (models.Short, error) {
	return c.Service.Create(ctx, p.form())
}

// Update modifies a short by id
func (c *Shorts) Update(ctx context.Context, id string, p ShortParams) (models.Short, error) {
	return c.Service.Update(ctx, id, p.form())
}
