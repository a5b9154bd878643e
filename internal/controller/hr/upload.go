package hr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"aps-backend/internal/activity"
	"aps-backend/internal/blob"
	"aps-backend/internal/controller"
	"aps-backend/internal/model"
	"aps-backend/internal/utilities"
)

const resumeObjectPrefix = "resumes"

var resumeContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// UploadResume stores the file in the blob sink and registers the resume
// @Summary Upload a resume
// @Description Only .pdf, .doc and .docx files within the upload size limit are accepted. Metadata fields default to the demo candidate.
// @Tags HR
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume file"
// @Param name formData string false "Candidate name"
// @Param email formData string false "Candidate email"
// @Param phone formData string false "Candidate phone"
// @Param sector formData string false "Sector"
// @Param designation formData string false "Designation"
// @Param experience formData string false "Experience"
// @Success 201 {object} model.Resume
// @Failure 400 {object} utilities.ErrorResponse "File missing"
// @Failure 413 {object} utilities.ErrorResponse "File too large"
// @Failure 415 {object} utilities.ErrorResponse "File extension is not allowed"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /hr/resumes [post]
func (hc *HRController) UploadResume(c *gin.Context) {
	rawFile, err := c.FormFile("file")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.Fail(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail(fmt.Sprintf("Failed to retrieve file: %s", err.Error())))
		return
	}

	extension := strings.ToLower(filepath.Ext(rawFile.Filename))
	contentType, ok := resumeContentTypes[extension]
	if !ok {
		c.JSON(http.StatusUnsupportedMediaType, utilities.Fail(fmt.Sprintf("Unsupported file extension: %s", extension)))
		return
	}

	var metadata model.ResumeMetadata
	if err := c.ShouldBind(&metadata); err != nil {
		c.JSON(http.StatusBadRequest, utilities.Fail(err.Error()))
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Fail("Cannot open file"))
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("failed to close uploaded file: %v", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Fail("Cannot read file"))
		return
	}

	file := model.UploadedFile{Name: rawFile.Filename, Size: rawFile.Size}
	if err := hc.persistFileData(c, &file, fileBytes, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Fail(fmt.Sprintf("Failed to store resume: %s", err.Error())))
		return
	}

	resume, err := hc.Store.UploadResume(c.Request.Context(), file, metadata)
	if err != nil {
		controller.RespondError(c, err, "Failed to upload resume")
		return
	}

	hc.record(c, activity.TypeUpload, "Uploaded resume", resume.FileName)
	c.JSON(http.StatusCreated, resume)
}

// DownloadResume streams the stored file of a resume
// @Summary Download a resume file
// @Tags HR
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Resume id"
// @Success 200 {file} file
// @Failure 404 {object} utilities.ErrorResponse "Resume or file not found"
// @Failure 500 {object} utilities.ErrorResponse "Storage error"
// @Router /hr/resumes/{id}/file [get]
func (hc *HRController) DownloadResume(c *gin.Context) {
	id := c.Param("id")

	var resume *model.Resume
	for _, r := range hc.Store.Resumes() {
		if r.ID == id {
			resume = &r
			break
		}
	}
	if resume == nil {
		c.JSON(http.StatusNotFound, utilities.Fail("Resume not found"))
		return
	}
	if resume.StorageKey == "" || hc.Blob == nil {
		c.JSON(http.StatusNotFound, utilities.Fail("No file is stored for this resume"))
		return
	}

	reader, err := hc.Blob.Get(c.Request.Context(), resume.StorageKey)
	if errors.Is(err, blob.ErrNotFound) {
		c.JSON(http.StatusNotFound, utilities.Fail("Resume file not found in storage"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.Fail(fmt.Sprintf("Failed to download file from storage: %s", err.Error())))
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("failed to close storage reader: %v", err)
		}
	}()

	contentType := resumeContentTypes[strings.ToLower(filepath.Ext(resume.StorageKey))]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.FileName))
	c.Writer.Header().Set("Content-Type", contentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		log.Printf("failed to send resume %s: %v", id, err)
		c.Abort()
		return
	}
	hc.record(c, activity.TypeDownload, "Downloaded resume", resume.FileName)
}

func (hc *HRController) persistFileData(c *gin.Context, file *model.UploadedFile, fileBytes []byte, contentType string) error {
	if hc.Blob == nil {
		return nil
	}

	objectName := blob.ObjectKey(path.Join(hc.Prefix, resumeObjectPrefix), file.Name)
	if err := hc.Blob.Put(c.Request.Context(), objectName, bytes.NewReader(fileBytes), contentType); err != nil {
		return err
	}
	file.StorageKey = objectName
	return nil
}
