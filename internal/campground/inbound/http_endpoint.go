package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/camporahq/campora/internal/campground/entity"
	"github.com/camporahq/campora/internal/campground/usecase"
	"github.com/camporahq/campora/internal/pkg/goerror"
	"github.com/camporahq/campora/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for campground browsing, mutation and
// reviews.
type HTTPEndpoint struct {
	uc uc
}

func toCampgroundItem(cg entity.Campground) CampgroundItem {
	return CampgroundItem{
		ID:          cg.ID,
		Title:       cg.Title,
		Description: cg.Description,
		Location:    cg.Location,
		Price:       cg.Price,
		ImageURL:    cg.ImageURL,
		AuthorID:    cg.AuthorID,
		AuthorName:  cg.AuthorName,
		CreatedAt:   cg.CreatedAt,
		UpdatedAt:   cg.UpdatedAt,
	}
}

// List returns a page of campgrounds.
// @Summary List campgrounds
// @Tags Campground
// @Produce json
// @Param q query string false "Search in title and location"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} router.successResponse{data=ListResponse} "Campgrounds"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/campgrounds [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.List(r.Context(), usecase.ListInput{
		Search: r.GetQuery("q"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	return ListResponse{
		Page:        resp.Page,
		Size:        resp.Size,
		Total:       resp.Total,
		Campgrounds: lo.Map(resp.Campgrounds, func(cg entity.Campground, _ int) CampgroundItem {
			return toCampgroundItem(cg)
		}),
	}, nil
}

// Detail returns one campground with its reviews.
// @Summary Campground detail
// @Tags Campground
// @Produce json
// @Param id path int true "Campground ID"
// @Success 200 {object} router.successResponse{data=DetailResponse} "Campground"
// @Failure 404 {object} router.errorResponse "Campground not found"
// @Router /api/v1/campgrounds/{id} [get]
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Detail(r.Context(), usecase.DetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return DetailResponse{
		CampgroundItem: toCampgroundItem(resp.Campground),
		Reviews: lo.Map(resp.Reviews, func(rv entity.Review, _ int) ReviewItem {
			return ReviewItem{
				ID:         rv.ID,
				AuthorID:   rv.AuthorID,
				AuthorName: rv.AuthorName,
				Rating:     rv.Rating,
				Body:       rv.Body,
				CreatedAt:  rv.CreatedAt,
			}
		}),
	}, nil
}

// Create adds a campground owned by the caller.
// @Summary Create campground
// @Tags Campground
// @Accept json
// @Produce json
// @Param request body CreateRequest true "Campground payload"
// @Success 200 {object} router.successResponse{data=CreateResponse} "Created"
// @Failure 401 {object} router.errorResponse "You must be signed in first"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/campgrounds [post]
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Create(r.Context(), usecase.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
	})
	if err != nil {
		return nil, err
	}

	return CreateResponse{ID: resp.ID}, nil
}

// Update edits a campground. Only the owner or a moderator may do this.
// @Summary Update campground
// @Tags Campground
// @Accept json
// @Param id path int true "Campground ID"
// @Param request body UpdateRequest true "Campground payload"
// @Success 204 "No Content"
// @Failure 403 {object} router.errorResponse "You do not have permission to do that"
// @Failure 404 {object} router.errorResponse "Campground not found"
// @Router /api/v1/campgrounds/{id} [put]
func (h *HTTPEndpoint) Update(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req UpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Update(r.Context(), usecase.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// Delete removes a campground. Only the owner or a moderator may do this.
// @Summary Delete campground
// @Tags Campground
// @Param id path int true "Campground ID"
// @Success 204 "No Content"
// @Failure 403 {object} router.errorResponse "You do not have permission to do that"
// @Failure 404 {object} router.errorResponse "Campground not found"
// @Router /api/v1/campgrounds/{id} [delete]
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(r.Context(), usecase.DeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}

// UploadImage replaces the campground image.
// @Summary Upload campground image
// @Tags Campground
// @Accept mpfd
// @Produce json
// @Param id path int true "Campground ID"
// @Param image formData file true "Image file (jpeg, png or webp)"
// @Success 200 {object} router.successResponse{data=UploadImageResponse} "Image stored"
// @Failure 403 {object} router.errorResponse "You do not have permission to do that"
// @Failure 404 {object} router.errorResponse "Campground not found"
// @Router /api/v1/campgrounds/{id}/image [put]
func (h *HTTPEndpoint) UploadImage(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("image")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, goerror.NewInvalidFormat()
	}

	resp, err := h.uc.UploadImage(ctx, usecase.UploadImageInput{
		ID:          id,
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
	if err != nil {
		return nil, err
	}

	return UploadImageResponse{ImageURL: resp.ImageURL}, nil
}

// ReviewCreate posts a review on a campground.
// @Summary Create review
// @Tags Campground, Review
// @Accept json
// @Produce json
// @Param id path int true "Campground ID"
// @Param request body ReviewCreateRequest true "Review payload"
// @Success 200 {object} router.successResponse{data=ReviewCreateResponse} "Created"
// @Failure 401 {object} router.errorResponse "You must be signed in first"
// @Failure 404 {object} router.errorResponse "Campground not found"
// @Router /api/v1/campgrounds/{id}/reviews [post]
func (h *HTTPEndpoint) ReviewCreate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ReviewCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ReviewCreate(r.Context(), usecase.ReviewCreateInput{
		CampgroundID: id,
		Rating:       req.Rating,
		Body:         req.Body,
	})
	if err != nil {
		return nil, err
	}

	return ReviewCreateResponse{ID: resp.ID}, nil
}

// ReviewDelete removes a review. Only its author or a moderator may do this.
// @Summary Delete review
// @Tags Campground, Review
// @Param id path int true "Campground ID"
// @Param reviewId path int true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} router.errorResponse "You do not have permission to do that"
// @Failure 404 {object} router.errorResponse "Review not found"
// @Router /api/v1/campgrounds/{id}/reviews/{reviewId} [delete]
func (h *HTTPEndpoint) ReviewDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	reviewID, err := r.GetParamInt64("reviewId")
	if err != nil {
		return nil, err
	}

	if err := h.uc.ReviewDelete(r.Context(), usecase.ReviewDeleteInput{
		CampgroundID: id,
		ReviewID:     reviewID,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}
