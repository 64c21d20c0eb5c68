package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/models"
)

// fakeStorage records uploads and returns deterministic URLs.
type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) PresignUpload(ctx context.Context, fileName, fileType, folder string) (string, string, error) {
	return "https://bucket.example.com/presigned/" + fileName,
		"https://bucket.example.com/" + folder + "/" + fileName, nil
}

func (f *fakeStorage) Upload(ctx context.Context, fileName, contentType, folder string, body io.Reader) (string, error) {
	f.uploads = append(f.uploads, fileName)
	return "https://bucket.example.com/" + folder + "/" + fileName, nil
}

func uploadRouter(st *fakeStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewUploadHandler(st)
	router.POST("/api/upload/presigned-url", h.CreatePresignedURL)
	return router
}

func TestCreatePresignedURL(t *testing.T) {
	router := uploadRouter(&fakeStorage{})

	w := postJSON(router, "/api/upload/presigned-url", map[string]string{
		"fileName": "smile.jpg",
		"fileType": "image/jpeg",
		"folder":   "consultations",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	var data PresignedURLResponse
	json.Unmarshal(resp.Data, &data)

	if data.UploadURL == "" || data.FileURL == "" {
		t.Errorf("expected both URLs, got %+v", data)
	}
}

func TestCreatePresignedURLRejectsNonImage(t *testing.T) {
	router := uploadRouter(&fakeStorage{})

	w := postJSON(router, "/api/upload/presigned-url", map[string]string{
		"fileName": "malware.exe",
		"fileType": "application/octet-stream",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image type, got %d", w.Code)
	}
}

func TestCreatePresignedURLMissingFields(t *testing.T) {
	router := uploadRouter(&fakeStorage{})

	w := postJSON(router, "/api/upload/presigned-url", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func multipartConsultation(t *testing.T, photoName, photoType string, photo []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"name":            "Maria Lopez",
		"email":           "maria@example.com",
		"phone":           "+1 555 0100",
		"serviceInterest": "implants",
	} {
		mw.WriteField(k, v)
	}
	if photoName != "" {
		hdr := make(map[string][]string)
		hdr["Content-Disposition"] = []string{`form-data; name="photo"; filename="` + photoName + `"`}
		hdr["Content-Type"] = []string{photoType}
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("failed to create part: %v", err)
		}
		part.Write(photo)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestCreateConsultationWithPhoto(t *testing.T) {
	store := setupTestStore(t)
	st := &fakeStorage{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewConsultationHandler(store, testNotifier(), st, 5*1024*1024)
	router.POST("/api/consultation", h.CreateConsultation)

	body, contentType := multipartConsultation(t, "smile.jpg", "image/jpeg", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/consultation", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	var created models.ConsultationRequest
	json.Unmarshal(resp.Data, &created)

	if created.PhotoURL == "" {
		t.Error("expected a non-empty photoUrl")
	}
	if len(st.uploads) != 1 {
		t.Errorf("expected one upload, got %d", len(st.uploads))
	}
}

func TestCreateConsultationRejectsNonImagePhoto(t *testing.T) {
	store := setupTestStore(t)
	st := &fakeStorage{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewConsultationHandler(store, testNotifier(), st, 5*1024*1024)
	router.POST("/api/consultation", h.CreateConsultation)

	body, contentType := multipartConsultation(t, "notes.txt", "text/plain", []byte("not an image"))
	req := httptest.NewRequest(http.MethodPost, "/api/consultation", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image photo, got %d: %s", w.Code, w.Body.String())
	}

	// Rejected before persistence
	var count int64
	store.DB.Model(&models.ConsultationRequest{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows after rejected upload, found %d", count)
	}
	if len(st.uploads) != 0 {
		t.Errorf("expected no uploads, got %d", len(st.uploads))
	}
}

func TestCreateConsultationRejectsOversizedPhoto(t *testing.T) {
	store := setupTestStore(t)
	st := &fakeStorage{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewConsultationHandler(store, testNotifier(), st, 8) // 8 byte cap
	router.POST("/api/consultation", h.CreateConsultation)

	body, contentType := multipartConsultation(t, "smile.jpg", "image/jpeg", []byte("more than eight bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/consultation", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized photo, got %d: %s", w.Code, w.Body.String())
	}
}
