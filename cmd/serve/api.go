package serve

import (
	"bytes"
	"errors"
	"net/http"
	"path"
	"path/filepath"
	"time"

	"github.com/bgraf/figurekit/document"
	"github.com/bgraf/figurekit/figure"
	"github.com/bgraf/figurekit/filesystem"
	"github.com/bgraf/figurekit/render"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// API exposes the document store to an editor front end.
type API struct {
	store     *document.Store
	templates *render.Templates
	opts      render.Options
	logger    *zap.Logger
}

func NewAPI(store *document.Store, templates *render.Templates, opts render.Options, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &API{
		store:     store,
		templates: templates,
		opts:      opts,
		logger:    logger,
	}
}

func (api *API) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(api.logger), gin.Recovery())

	r.GET("/documents", api.ServeDocuments)
	r.GET("/documents/:GUID", api.ServeDocument)
	r.GET("/documents/:GUID/preview", api.ServePreview)
	r.PUT("/documents/:GUID/figures", api.ReplaceFigure)
	r.POST("/documents/:GUID/figures", api.InsertFigure)

	r.POST("/figures/encode", api.EncodeFigure)
	r.POST("/figures/decode", api.DecodeFigures)

	if api.opts.MediaPrefix != "" {
		r.GET(path.Join(api.opts.MediaPrefix, "*path"), api.ServeMedia)
	}

	return r
}

type documentSummary struct {
	GUID      uuid.UUID      `json:"guid"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Date      time.Time      `json:"date"`
	Published bool           `json:"published"`
	Tags      []document.Tag `json:"tags"`
}

type documentDetail struct {
	documentSummary
	Markdown string               `json:"markdown"`
	Figures  []figure.ImageConfig `json:"figures"`
}

func summarize(doc *document.Document) documentSummary {
	return documentSummary{
		GUID:      doc.GUID,
		Title:     doc.Title,
		Slug:      doc.Slug,
		Date:      doc.Date,
		Published: doc.Published,
		Tags:      doc.Tags,
	}
}

func detail(doc *document.Document) (documentDetail, error) {
	figures, err := doc.Figures()
	if err != nil {
		return documentDetail{}, err
	}
	if figures == nil {
		figures = []figure.ImageConfig{}
	}

	return documentDetail{
		documentSummary: summarize(doc),
		Markdown:        doc.Markdown(),
		Figures:         figures,
	}, nil
}

func (api *API) ServeDocuments(c *gin.Context) {
	docs := api.store.Documents()

	summaries := make([]documentSummary, len(docs))
	for i, doc := range docs {
		summaries[i] = summarize(doc)
	}

	c.JSON(http.StatusOK, summaries)
}

func (api *API) ServeDocument(c *gin.Context) {
	doc, ok := api.documentFromParam(c)
	if !ok {
		return
	}

	d, err := detail(doc)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

// ServePreview re-reads the post from disk so edits made outside the API
// show up.
func (api *API) ServePreview(c *gin.Context) {
	guid, ok := guidFromParam(c)
	if !ok {
		return
	}

	doc, err := api.store.ReloadByGUID(guid)
	if err != nil {
		api.respondError(c, err)
		return
	}

	page, err := render.Render(doc, api.opts)
	if err != nil {
		api.respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := api.templates.Preview(&buf, page); err != nil {
		api.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

type replaceRequest struct {
	Src    string             `json:"src" binding:"required"`
	Config figure.ImageConfig `json:"config"`
}

func (api *API) ReplaceFigure(c *gin.Context) {
	guid, ok := guidFromParam(c)
	if !ok {
		return
	}

	req := replaceRequest{Config: figure.NewImageConfig("", "")}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := api.store.Edit(guid, func(doc *document.Document) error {
		return doc.ReplaceFigure(req.Src, req.Config)
	})
	if err != nil {
		api.respondError(c, err)
		return
	}

	api.respondDocument(c, doc)
}

type insertRequest struct {
	Config   figure.ImageConfig `json:"config"`
	Position figure.Position    `json:"position"`
	Offset   int                `json:"offset"`
}

func (api *API) InsertFigure(c *gin.Context) {
	guid, ok := guidFromParam(c)
	if !ok {
		return
	}

	req := insertRequest{
		Config:   figure.NewImageConfig("", ""),
		Position: figure.PositionEnd,
		Offset:   -1,
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := api.store.Edit(guid, func(doc *document.Document) error {
		return doc.InsertFigure(req.Config, req.Position, req.Offset)
	})
	if err != nil {
		api.respondError(c, err)
		return
	}

	api.respondDocument(c, doc)
}

func (api *API) EncodeFigure(c *gin.Context) {
	cfg := figure.NewImageConfig("", "")
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := figure.Validate(cfg); err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": figure.Encode(cfg)})
}

type decodeRequest struct {
	HTML string `json:"html" binding:"required"`
}

func (api *API) DecodeFigures(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	figures, err := figure.Figures(req.HTML)
	if err != nil {
		api.respondError(c, err)
		return
	}
	if len(figures) == 0 {
		api.respondError(c, figure.ErrNoFigure)
		return
	}

	c.JSON(http.StatusOK, gin.H{"figures": figures})
}

// ServeMedia serves images below the content directory.
func (api *API) ServeMedia(c *gin.Context) {
	rel := filepath.FromSlash(path.Clean("/" + c.Param("path")))

	if !filesystem.HasExtension(rel, filesystem.ImageExtensions) {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.File(filepath.Join(api.opts.ContentDirectory, rel))
}

func (api *API) respondDocument(c *gin.Context, doc *document.Document) {
	d, err := detail(doc)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (api *API) respondError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid figure", "fields": verrs})
	case errors.Is(err, document.ErrNoSuchDocument), errors.Is(err, figure.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, figure.ErrNoFigure):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		api.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func guidFromParam(c *gin.Context) (uuid.UUID, bool) {
	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return uuid.UUID{}, false
	}
	return guid, true
}

func (api *API) documentFromParam(c *gin.Context) (*document.Document, bool) {
	guid, ok := guidFromParam(c)
	if !ok {
		return nil, false
	}

	doc := api.store.DocumentByGUID(guid)
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": document.ErrNoSuchDocument.Error()})
		return nil, false
	}

	return doc, true
}
