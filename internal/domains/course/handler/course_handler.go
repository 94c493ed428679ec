package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"courseplatform-backend/internal/domains/category"
	"courseplatform-backend/internal/domains/course/model"
	"courseplatform-backend/internal/domains/course/service"
	"courseplatform-backend/internal/shared/middleware"
	"courseplatform-backend/internal/shared/response"
)

const maxUploadBytes = 32 << 20

type CourseHandler struct {
	service service.CourseService
}

func NewCourseHandler(service service.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Create handles POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.service.CreateDraft(c.Request.Context(), ownerID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, draft)
}

// GetByID handles GET /api/courses/:id
func (h *CourseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid course id")
		return
	}

	view, err := h.service.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if view.IsDraft {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": view.Draft, "isDraft": true})
		return
	}
	response.Success(c, http.StatusOK, view.Course)
}

// Update handles PATCH /api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid course id")
		return
	}

	var req model.UpdateDraftReq
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := h.bindUpdateForm(c, &req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.service.UpdateDraft(c.Request.Context(), id, ownerID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, draft)
}

// bindUpdateForm maps multipart form fields onto the partial-update request.
// Field presence matters: an absent field leaves the draft untouched while
// an empty value clears it.
func (h *CourseHandler) bindUpdateForm(c *gin.Context, req *model.UpdateDraftReq) error {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		return errors.New("invalid multipart form")
	}

	if v, ok := c.GetPostForm("name"); ok {
		req.Name = &v
	}
	if v, ok := c.GetPostForm("desc"); ok {
		req.Desc = &v
	}
	if v, ok := c.GetPostForm("categoryId"); ok {
		req.CategoryID = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return errors.New("invalid price")
		}
		req.Price = &price
	}
	if v, ok := c.GetPostForm("expectedVersion"); ok {
		version, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.New("invalid expectedVersion")
		}
		req.ExpectedVersion = &version
	}

	fileHeader, err := c.FormFile("thumbnail")
	if err == nil {
		upload, err := readUpload(fileHeader)
		if err != nil {
			return err
		}
		req.Thumbnail = upload
	}
	return nil
}

// AttachFiles handles POST /api/courses/:id/attachments
func (h *CourseHandler) AttachFiles(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid course id")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form")
		return
	}

	var files []model.FileUpload
	for _, fileHeader := range form.File["files"] {
		upload, err := readUpload(fileHeader)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		files = append(files, *upload)
	}

	added, err := h.service.AttachFiles(c.Request.Context(), id, ownerID, files)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, added)
}

// InitVideoUpload handles POST /api/courses/:id/video
func (h *CourseHandler) InitVideoUpload(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid course id")
		return
	}

	result, err := h.service.InitVideoUpload(c.Request.Context(), id, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     result.UploadURL,
		"data":    result.Draft,
	})
}

// Publish handles POST /api/courses/:id/publish
func (h *CourseHandler) Publish(c *gin.Context) {
	ownerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid course id")
		return
	}

	course, err := h.service.Publish(c.Request.Context(), id, ownerID)
	if err != nil {
		// Publishing with no draft at all is a client mistake, not a 404.
		if errors.Is(err, model.ErrDraftNotFound) {
			response.ErrorResponse(c, http.StatusBadRequest, "NO_DRAFT", "No draft found for this course")
			return
		}
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, course)
}

func (h *CourseHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, category.ErrCategoryNotFound) {
		response.UnprocessableEntity(c, "Category does not exist")
		return
	}

	if isValidationError(err) {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	status := model.GetHTTPStatusCode(err)
	code := model.ErrorCode(err)
	if status == http.StatusInternalServerError && code == "INTERNAL_ERROR" {
		response.InternalServerError(c, "Something went wrong")
		return
	}
	response.ErrorResponse(c, status, code, err.Error())
}

func isValidationError(err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return true
	}
	var obj validation.ErrorObject
	return errors.As(err, &obj)
}

func readUpload(fileHeader *multipart.FileHeader) (*model.FileUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("cannot read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("cannot read uploaded file")
	}
	return &model.FileUpload{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
