package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"catalog-admin-core/internal/application"
	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/infrastructure/metrics"

	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20

type sectionSelectionRequest struct {
	SectionID string   `json:"section_id"`
	Title     string   `json:"title"`
	Selected  []string `json:"selected"`
}

type productRequest struct {
	Name             string                    `json:"name"`
	ShortDescription string                    `json:"short_description"`
	SKU              string                    `json:"sku"`
	RegularPrice     string                    `json:"regular_price"`
	SalePrice        string                    `json:"sale_price"`
	TechnicalSpecs   []domain.SpecBlock        `json:"technical_specs"`
	Sections         []sectionSelectionRequest `json:"sections"`
	MainImageURL     string                    `json:"main_image_url"`
	GalleryImageURL  string                    `json:"gallery_image_url"`
	Category         string                    `json:"category"`
	Brand            string                    `json:"brand"`
	Website          string                    `json:"website"`
}

func (req *productRequest) toInput() application.PublishProductInput {
	sections := make([]application.SectionSelection, 0, len(req.Sections))
	for _, s := range req.Sections {
		sections = append(sections, application.SectionSelection{
			SectionID: s.SectionID,
			Title:     s.Title,
			Selected:  s.Selected,
		})
	}

	return application.PublishProductInput{
		Name:             req.Name,
		ShortDescription: req.ShortDescription,
		SKU:              req.SKU,
		RegularPrice:     req.RegularPrice,
		SalePrice:        req.SalePrice,
		TechnicalSpecs:   req.TechnicalSpecs,
		Sections:         sections,
		MainImageURL:     req.MainImageURL,
		GalleryImageURL:  req.GalleryImageURL,
		Category:         req.Category,
		Brand:            req.Brand,
		Website:          req.Website,
	}
}

// handlePublishProduct serves both create (POST /products) and edit
// (PUT /products/{id}). The body is either JSON, with image URLs only, or
// multipart form data carrying a "payload" JSON field plus pending files
// under "mainImage" and "galleryImage".
func (a *API) handlePublishProduct(w http.ResponseWriter, r *http.Request) {
	input, err := a.decodeProductInput(r)
	if err != nil {
		a.respondError(w, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	product, err := a.products.PublishProduct(r.Context(), input)
	if err != nil {
		metrics.PublishTotal.WithLabelValues("product", "failure").Inc()
		a.respondError(w, err)
		return
	}
	metrics.PublishTotal.WithLabelValues("product", "success").Inc()

	status := http.StatusCreated
	if input.ID != "" {
		status = http.StatusOK
	}
	respondJSON(w, status, product)
}

func (a *API) decodeProductInput(r *http.Request) (application.PublishProductInput, error) {
	var req productRequest

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := decodeBody(r, &req); err != nil {
			return application.PublishProductInput{}, err
		}
		return req.toInput(), nil
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return application.PublishProductInput{}, errBadRequest
	}
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &req); err != nil {
		return application.PublishProductInput{}, errBadRequest
	}

	input := req.toInput()

	mainFile, err := formFile(r, "mainImage")
	if err != nil {
		return application.PublishProductInput{}, err
	}
	input.MainImageFile = mainFile

	galleryFile, err := formFile(r, "galleryImage")
	if err != nil {
		return application.PublishProductInput{}, err
	}
	input.GalleryImageFile = galleryFile

	return input, nil
}

// formFile reads one optional multipart file into memory.
func formFile(r *http.Request, field string) (*application.FileInput, error) {
	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errBadRequest
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errBadRequest
	}

	return &application.FileInput{Filename: header.Filename, Data: data}, nil
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := a.products.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.products.ListProducts(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}

	if products == nil {
		products = []*domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := a.products.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
