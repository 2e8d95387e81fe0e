// Copyright (c) 2026 Hanvil Academy
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"hanvil/internal/content"
	"hanvil/internal/imaging"
	"hanvil/internal/models"
	"hanvil/internal/render"
	"hanvil/internal/storage"
	"hanvil/internal/store"
)

// maxApplyBody bounds the whole admissions request: two uploads plus the
// text fields.
const maxApplyBody = 2*maxUploadSize + 64<<10

// documentLinkTTL is how long the links in the "application received"
// record stay valid. S3 caps presigned URLs at seven days.
const documentLinkTTL = 7 * 24 * time.Hour

// Admissions serves the apply page and receives online applications.
type Admissions struct {
	renderer      *render.Renderer
	site          *content.Site
	applications  *store.ApplicationStore
	storageClient *storage.Client
	now           func() time.Time
}

// NewAdmissions creates the admissions handlers. applications and
// storageClient may be nil; with neither configured the form is validated
// and acknowledged but nothing is kept.
func NewAdmissions(renderer *render.Renderer, site *content.Site, applications *store.ApplicationStore, storageClient *storage.Client) *Admissions {
	return &Admissions{
		renderer:      renderer,
		site:          site,
		applications:  applications,
		storageClient: storageClient,
		now:           time.Now,
	}
}

// Show renders the apply page on the tab chosen with ?tab=.
func (a *Admissions) Show(w http.ResponseWriter, r *http.Request) {
	tab := "download"
	if r.URL.Query().Get("tab") == "online" {
		tab = "online"
	}
	a.render(w, r, http.StatusOK, tab, &ApplyForm{})
}

// Submit validates an online application, stores the documents and the
// application row where configured, and re-renders the form.
func (a *Admissions) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxApplyBody)
	if err := r.ParseMultipartForm(maxApplyBody); err != nil {
		f := &ApplyForm{}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			f.addError(fieldPhoto, "Files too large. Each file may be at most 5 MB.")
			a.render(w, r, http.StatusRequestEntityTooLarge, "online", f)
			return
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	now := a.now()
	f := applyFormFromValues(r.PostForm)
	dob := f.validate(a.site, now)

	photo, msg := readUpload(r, fieldPhoto, photoTypes)
	f.addError(fieldPhoto, msg)
	birthCert, msg := readUpload(r, fieldBirthCert, birthCertTypes)
	f.addError(fieldBirthCert, msg)

	// Normalise the photo before anything is stored so an unreadable image
	// is a form error, not a half-saved application.
	var photoJPEG *imaging.ProcessedImage
	if photo != nil && len(f.Errors) == 0 {
		p, err := imaging.Process(photo.data, imaging.PassportPhoto)
		if err != nil {
			slog.Info("passport photo rejected", "error", err)
			if errors.Is(err, imaging.ErrTooLarge) {
				f.addError(fieldPhoto, "The photo's dimensions are too large.")
			} else {
				f.addError(fieldPhoto, "The photo could not be read. Please upload a JPEG or PNG.")
			}
		}
		photoJPEG = p
	}

	if len(f.Errors) > 0 {
		a.render(w, r, http.StatusUnprocessableEntity, "online", f)
		return
	}

	app := &models.Application{
		ChildName:   f.ChildName,
		DateOfBirth: dob,
		ParentName:  f.ParentName,
		Phone:       f.Phone,
		Email:       f.Email,
		ClassLevel:  f.ClassLevel,
		Status:      models.ApplicationStatusSubmitted,
	}

	ctx := r.Context()
	uploaded, err := a.storeDocuments(ctx, app, photoJPEG, birthCert, now)
	if err != nil {
		slog.Error("admissions upload failed", "error", err)
		f.Failed = true
		a.render(w, r, http.StatusBadGateway, "online", f)
		return
	}

	if a.applications != nil {
		created, err := a.applications.Create(ctx, app)
		if err != nil {
			slog.Error("store application failed", "error", err)
			a.removeDocuments(ctx, uploaded)
			f.Failed = true
			a.render(w, r, http.StatusInternalServerError, "online", f)
			return
		}
		app = created
	}

	slog.Info("application received",
		"id", app.ID,
		"class_level", app.ClassLevel,
		"age", app.AgeOn(now),
		"documents", app.HasDocuments(),
		"links", a.documentLinks(ctx, app),
		"stored", a.applications != nil,
	)

	a.render(w, r, http.StatusOK, "online", &ApplyForm{Success: true})
}

// storeDocuments uploads the processed photo and the birth certificate to
// the private bucket and records their keys on app. It returns the keys
// written so they can be removed if a later step fails.
func (a *Admissions) storeDocuments(ctx context.Context, app *models.Application, photo *imaging.ProcessedImage, birthCert *upload, now time.Time) ([]string, error) {
	if a.storageClient == nil {
		return nil, nil
	}

	submission := uuid.New()
	var keys []string

	if photo != nil {
		key := storage.DocumentKey(submission, "photo", "jpg", now)
		if err := a.storageClient.Upload(ctx, key, photo.ContentType, bytes.NewReader(photo.Data), int64(len(photo.Data))); err != nil {
			return keys, err
		}
		keys = append(keys, key)
		app.PhotoKey = &key
	}

	if birthCert != nil {
		key := storage.DocumentKey(submission, "birth-certificate", extensionFromType(birthCert.contentType), now)
		if err := a.storageClient.Upload(ctx, key, birthCert.contentType, bytes.NewReader(birthCert.data), int64(len(birthCert.data))); err != nil {
			a.removeDocuments(ctx, keys)
			return nil, err
		}
		keys = append(keys, key)
		app.BirthCertKey = &key
	}

	return keys, nil
}

// documentLinks presigns the stored documents of app so the office can
// open them from the log record. Keys that fail to sign are skipped.
func (a *Admissions) documentLinks(ctx context.Context, app *models.Application) []string {
	if a.storageClient == nil {
		return nil
	}
	var links []string
	for _, key := range []*string{app.PhotoKey, app.BirthCertKey} {
		if key == nil {
			continue
		}
		url, err := a.storageClient.PresignedURL(ctx, *key, documentLinkTTL)
		if err != nil {
			slog.Warn("presign document failed",
				"bucket", a.storageClient.Bucket(),
				"key", *key,
				"error", err,
			)
			continue
		}
		links = append(links, url)
	}
	return links
}

// removeDocuments deletes uploaded objects, logging failures.
func (a *Admissions) removeDocuments(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := a.storageClient.Delete(ctx, key); err != nil {
			slog.Warn("remove orphaned document failed", "key", key, "error", err)
		}
	}
}

func (a *Admissions) render(w http.ResponseWriter, r *http.Request, status int, tab string, f *ApplyForm) {
	data := &render.PageData{
		Title:   "Apply",
		Section: "admissions",
		Data: map[string]any{
			"Tab":  tab,
			"Form": f,
		},
	}
	if render.IsHTMX(r) {
		a.renderer.Fragment(w, r, status, "apply", "apply_form", data)
		return
	}
	a.renderer.PageStatus(w, r, status, "apply", data)
}
