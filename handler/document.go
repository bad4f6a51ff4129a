package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Contak-cpu/inmob-sub001/analyzer"
	"github.com/Contak-cpu/inmob-sub001/config"
	"github.com/Contak-cpu/inmob-sub001/middleware"
	"github.com/Contak-cpu/inmob-sub001/model"
	"github.com/Contak-cpu/inmob-sub001/pkg/logger"
	"github.com/Contak-cpu/inmob-sub001/service"
	"github.com/Contak-cpu/inmob-sub001/template"
	"github.com/Contak-cpu/inmob-sub001/validator"
)

// DocumentHandler exposes the document engine over HTTP: field and form
// validation, contract and receipt generation, quality analysis, and access
// to the generated-document store.
type DocumentHandler struct {
	store   *service.DocumentStore
	archive *service.ArchiveService // nil when archiving is disabled
	realty  config.RealtyConfig
}

func NewDocumentHandler(archive *service.ArchiveService, realty config.RealtyConfig) *DocumentHandler {
	return &DocumentHandler{
		store:   service.GetDocumentStore(),
		archive: archive,
		realty:  realty,
	}
}

type ValidateFieldRequest struct {
	Name    string `json:"name" binding:"required"`
	Value   string `json:"value"`
	Subtype string `json:"subtype"`
	Touched bool   `json:"touched"`
}

// ValidateField runs the generic field rule for one field.
func (h *DocumentHandler) ValidateField(c *gin.Context) {
	var req ValidateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	msg := validator.Field(req.Name, req.Value, req.Subtype)
	c.JSON(http.StatusOK, gin.H{
		"error":  msg,
		"status": validator.FieldStatus(req.Name, req.Value, req.Touched, req.Subtype),
	})
}

type ValidateFormRequest struct {
	Record  model.Record `json:"record" binding:"required"`
	Subtype string       `json:"subtype"`
}

// ValidateForm runs the field validator over every present field.
func (h *DocumentHandler) ValidateForm(c *gin.Context) {
	var req ValidateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	report := validator.Form(req.Record, req.Subtype)
	c.JSON(http.StatusOK, gin.H{
		"errors": report,
		"valid":  report.Valid(),
	})
}

type GenerateContractRequest struct {
	Record  model.Record `json:"record" binding:"required"`
	Subtype string       `json:"subtype" binding:"required"`
}

// GenerateContract validates the record, renders the contract, scores the
// result and stores it.
func (h *DocumentHandler) GenerateContract(c *gin.Context) {
	var req GenerateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if report := validator.ContractData(req.Record); !report.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": report})
		return
	}

	h.applyRealtyDefaults(req.Record)

	text, err := template.Contract(req.Record, req.Subtype, time.Now())
	if err != nil {
		if errors.Is(err, template.ErrUnknownSubtype) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate contract"})
		return
	}

	quality := analyzer.Analyze(text, req.Subtype)

	doc := &model.Document{
		ID:        uuid.New().String(),
		Kind:      model.KindContract,
		Subtype:   req.Subtype,
		Office:    middleware.GetOffice(c),
		Title:     "Contrato " + req.Subtype + " - " + req.Record.Get("propertyAddress"),
		Text:      text,
		Quality:   &quality,
		CreatedAt: time.Now(),
	}
	h.store.Save(doc)
	h.archiveAsync(c.Request.Context(), doc)

	c.JSON(http.StatusOK, doc)
}

type GenerateReceiptRequest struct {
	Record model.Record     `json:"record" binding:"required"`
	Items  []model.LineItem `json:"items"`
	Type   string           `json:"type" binding:"required"`
}

// GenerateReceipt renders a rent, repair or service receipt.
func (h *DocumentHandler) GenerateReceipt(c *gin.Context) {
	var req GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if report := validator.ReceiptData(req.Record); !report.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": report})
		return
	}

	h.applyRealtyDefaults(req.Record)
	now := time.Now()

	var text string
	switch req.Type {
	case template.ReceiptRent:
		text = template.RentReceipt(req.Record, req.Items, now)
	case template.ReceiptRepair:
		text = template.RepairReceipt(req.Record, req.Items, now)
	case template.ReceiptService:
		text = template.ServiceReceipt(req.Record, req.Items, now)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown receipt type: " + req.Type})
		return
	}

	doc := &model.Document{
		ID:        uuid.New().String(),
		Kind:      model.KindReceipt,
		Subtype:   req.Type,
		Office:    middleware.GetOffice(c),
		Title:     "Recibo " + req.Type + " - " + req.Record.Get("tenantName"),
		Text:      text,
		CreatedAt: now,
	}
	h.store.Save(doc)
	h.archiveAsync(c.Request.Context(), doc)

	c.JSON(http.StatusOK, doc)
}

type AnalyzeRequest struct {
	Text    string `json:"text"`
	Subtype string `json:"subtype" binding:"required"`
}

// Analyze scores caller-supplied document text. Analyzer faults come back as
// an ERROR status inside the report, never as an HTTP failure.
func (h *DocumentHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, analyzer.Analyze(req.Text, req.Subtype))
}

// List returns all documents for the current office
func (h *DocumentHandler) List(c *gin.Context) {
	office := middleware.GetOffice(c)
	documents := h.store.GetByOffice(office)

	// Return without text for list view
	result := make([]gin.H, len(documents))
	for i, doc := range documents {
		entry := gin.H{
			"id":         doc.ID,
			"kind":       doc.Kind,
			"subtype":    doc.Subtype,
			"title":      doc.Title,
			"created_at": doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at": doc.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if doc.Quality != nil {
			entry["score"] = doc.Quality.Score
			entry["verdict"] = doc.Quality.Verdict
		}
		result[i] = entry
	}

	c.JSON(http.StatusOK, gin.H{"documents": result})
}

// Get returns a single document with its full text
func (h *DocumentHandler) Get(c *gin.Context) {
	office := middleware.GetOffice(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.Office != office {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GetArchiveLink returns a presigned download URL for the archived copy
func (h *DocumentHandler) GetArchiveLink(c *gin.Context) {
	office := middleware.GetOffice(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.Office != office {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	if h.archive == nil || doc.ArchiveKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document is not archived"})
		return
	}

	url, err := h.archive.GetPresignedURL(c.Request.Context(), doc.ArchiveKey)
	if err != nil {
		// Fall back to the plain bucket URL, which works when the bucket
		// policy allows public reads
		logger.Warn(c.Request.Context(), "presigning failed, returning public URL",
			"document_id", id, "error", err)
		url = h.archive.GetPublicURL(doc.ArchiveKey)
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Delete deletes a document and its archived copy
func (h *DocumentHandler) Delete(c *gin.Context) {
	office := middleware.GetOffice(c)
	id := c.Param("id")

	doc := h.store.Get(id)
	if doc == nil || doc.Office != office {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if h.archive != nil && doc.ArchiveKey != "" {
		if err := h.archive.DeleteObject(c.Request.Context(), doc.ArchiveKey); err != nil {
			logger.Warn(c.Request.Context(), "failed to delete archived copy",
				"document_id", id, "error", err)
		}
	}

	h.store.Delete(id)
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}

// applyRealtyDefaults fills the realty-office fields from configuration when
// the record does not carry its own.
func (h *DocumentHandler) applyRealtyDefaults(rec model.Record) {
	if !rec.Has("realtyName") && h.realty.Name != "" {
		rec["realtyName"] = h.realty.Name
	}
	if !rec.Has("realtyLicense") && h.realty.License != "" {
		rec["realtyLicense"] = h.realty.License
	}
	if !rec.Has("realtyAddress") && h.realty.Address != "" {
		rec["realtyAddress"] = h.realty.Address
	}
}

// archiveAsync uploads the rendered text in the background so generation
// never blocks on object storage.
func (h *DocumentHandler) archiveAsync(ctx context.Context, doc *model.Document) {
	if h.archive == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()

		key, err := h.archive.ArchiveDocument(ctx, doc)
		if err != nil {
			logger.Error(ctx, "failed to archive document", "document_id", doc.ID, "error", err)
			return
		}
		h.store.SetArchiveKey(doc.ID, key)
		logger.Info(ctx, "document archived", "document_id", doc.ID, "key", key)
	}()
}
