package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/storage"
	"dental-tourism-server/internal/utils"
)

// UploadHandler issues presigned upload URLs so the browser can push photo
// bytes straight to the bucket without passing through this server.
type UploadHandler struct {
	Storage storage.Storage
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(st storage.Storage) *UploadHandler {
	return &UploadHandler{Storage: st}
}

// PresignedURLRequest represents the presigned URL request payload.
type PresignedURLRequest struct {
	FileName string `json:"fileName" validate:"required"`
	FileType string `json:"fileType" validate:"required"`
	Folder   string `json:"folder"`
}

// PresignedURLResponse carries the time-limited upload URL and the durable
// URL the object will have.
type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
}

// CreatePresignedURL handles POST /api/upload/presigned-url.
func (h *UploadHandler) CreatePresignedURL(c *gin.Context) {
	var req PresignedURLRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !strings.HasPrefix(req.FileType, "image/") {
		utils.BadRequest(c, "Only image uploads are allowed")
		return
	}

	if h.Storage == nil {
		utils.InternalServerError(c, "Uploads are not configured")
		return
	}

	uploadURL, fileURL, err := h.Storage.PresignUpload(c.Request.Context(), req.FileName, req.FileType, req.Folder)
	if err != nil {
		log.Printf("Failed to presign upload for %s: %v", req.FileName, err)
		utils.InternalServerError(c, "Upload failed")
		return
	}

	utils.Success(c, "Presigned URL generated", PresignedURLResponse{
		UploadURL: uploadURL,
		FileURL:   fileURL,
	})
}
