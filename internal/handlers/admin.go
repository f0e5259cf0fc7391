// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"royalsite/internal/models"
	"royalsite/internal/store"
)

// Admin groups the JSON CRUD API handlers for every managed entity.
// The admin console is a thin client over this API.
type Admin struct {
	pageContents   *store.PageContentStore
	company        *store.CompanyStore
	statistics     *store.StatisticsStore
	services       *store.ServiceStore
	projects       *store.ProjectStore
	team           *store.TeamStore
	testimonials   *store.TestimonialStore
	whyChooseUs    *store.WhyChooseUsStore
	certifications *store.CertificationStore
	faqs           *store.FAQStore
	messages       *store.ContactStore
	users          *store.UserStore
}

// NewAdmin creates a new Admin handler group with the given stores.
func NewAdmin(pageContents *store.PageContentStore, company *store.CompanyStore, statistics *store.StatisticsStore, services *store.ServiceStore, projects *store.ProjectStore, team *store.TeamStore, testimonials *store.TestimonialStore, whyChooseUs *store.WhyChooseUsStore, certifications *store.CertificationStore, faqs *store.FAQStore, messages *store.ContactStore, users *store.UserStore) *Admin {
	return &Admin{
		pageContents:   pageContents,
		company:        company,
		statistics:     statistics,
		services:       services,
		projects:       projects,
		team:           team,
		testimonials:   testimonials,
		whyChooseUs:    whyChooseUs,
		certifications: certifications,
		faqs:           faqs,
		messages:       messages,
		users:          users,
	}
}

// --- JSON helpers ---

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// readJSON decodes the request body into dst. Unknown fields are rejected
// so typos in the admin console surface as errors instead of silent drops.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// urlID parses the {id} chi URL parameter.
func urlID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// storeError maps a store failure onto an HTTP response. Validation
// failures raised by the stores (unknown category, rating out of range)
// come back as plain errors, so anything that is not a known sentinel
// and mentions no SQL verb is treated as a bad request.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrSingletonExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrSingletonProtected):
		respondError(w, http.StatusForbidden, err.Error())
	case strings.Contains(err.Error(), "unknown category"),
		strings.Contains(err.Error(), "out of range"):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("store operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// --- Dashboard ---

// Dashboard returns the admin landing counters: entity totals and the
// contact inbox broken down by status.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	services, _ := a.services.List()
	projects, _ := a.projects.List()
	team, _ := a.team.List()
	testimonials, _ := a.testimonials.List()

	counts, err := a.messages.CountByStatus()
	if err != nil {
		slog.Error("count messages failed", "error", err)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"services":     len(services),
		"projects":     len(projects),
		"team_members": len(team),
		"testimonials": len(testimonials),
		"messages":     counts,
	})
}

// --- Services ---

func (a *Admin) ServiceList(w http.ResponseWriter, r *http.Request) {
	items, err := a.services.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) ServiceGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.services.FindByID(id)
	if err != nil {
		storeError(w, err)
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "service not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *Admin) ServiceCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Service
	if !readJSON(w, r, &in) {
		return
	}
	if in.Name.EN == "" {
		respondError(w, http.StatusBadRequest, "name.en is required")
		return
	}
	item, err := a.services.Create(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (a *Admin) ServiceUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in models.Service
	if !readJSON(w, r, &in) {
		return
	}
	in.ID = id
	if err := a.services.Update(&in); err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &in)
}

func (a *Admin) ServiceDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.services.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Projects ---

func (a *Admin) ProjectList(w http.ResponseWriter, r *http.Request) {
	items, err := a.projects.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) ProjectGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.projects.FindByID(id)
	if err != nil {
		storeError(w, err)
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *Admin) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Project
	if !readJSON(w, r, &in) {
		return
	}
	if in.Title.EN == "" {
		respondError(w, http.StatusBadRequest, "title.en is required")
		return
	}
	if !models.ValidCategory(string(in.Category)) {
		respondError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if in.Image == "" {
		respondError(w, http.StatusBadRequest, "image is required")
		return
	}
	item, err := a.projects.Create(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (a *Admin) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in models.Project
	if !readJSON(w, r, &in) {
		return
	}
	if !models.ValidCategory(string(in.Category)) {
		respondError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if in.Image == "" {
		respondError(w, http.StatusBadRequest, "image is required")
		return
	}
	in.ID = id
	if err := a.projects.Update(&in); err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &in)
}

func (a *Admin) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.projects.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ProjectImageAdd attaches a slider image to a project.
func (a *Admin) ProjectImageAdd(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in models.ProjectImage
	if !readJSON(w, r, &in) {
		return
	}
	if in.Image == "" {
		respondError(w, http.StatusBadRequest, "image is required")
		return
	}
	in.ProjectID = id
	img, err := a.projects.AddImage(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, img)
}

// ProjectImageDelete removes a single slider image.
func (a *Admin) ProjectImageDelete(w http.ResponseWriter, r *http.Request) {
	imageID, err := uuid.Parse(chi.URLParam(r, "imageID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := a.projects.DeleteImage(imageID); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Team ---

func (a *Admin) TeamList(w http.ResponseWriter, r *http.Request) {
	items, err := a.team.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) TeamCreate(w http.ResponseWriter, r *http.Request) {
	var in models.TeamMember
	if !readJSON(w, r, &in) {
		return
	}
	if in.Name.EN == "" {
		respondError(w, http.StatusBadRequest, "name.en is required")
		return
	}
	item, err := a.team.Create(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (a *Admin) TeamUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in models.TeamMember
	if !readJSON(w, r, &in) {
		return
	}
	in.ID = id
	if err := a.team.Update(&in); err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &in)
}

func (a *Admin) TeamDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.team.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Testimonials ---

func (a *Admin) TestimonialList(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Testimonial
	if !readJSON(w, r, &in) {
		return
	}
	if in.CustomerName.EN == "" {
		respondError(w, http.StatusBadRequest, "customer_name.en is required")
		return
	}
	item, err := a.testimonials.Create(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in models.Testimonial
	if !readJSON(w, r, &in) {
		return
	}
	in.ID = id
	if err := a.testimonials.Update(&in); err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &in)
}

func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.testimonials.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Why choose us ---

func (a *Admin) WhyChooseUsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.whyChooseUs.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) WhyChooseUsCreate(w http.ResponseWriter, r *http.Request) {
	var in models.WhyChooseUsItem
	if !readJSON(w, r, &in) {
		return
	}
	if in.Title.EN == "" {
		respondError(w, http.StatusBadRequest, "title.en is required")
		return
	}
	item, err := a.whyChooseUs.Create(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (a *Admin) WhyChooseUsUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in models.WhyChooseUsItem
	if !readJSON(w, r, &in) {
		return
	}
	in.ID = id
	item, err := a.whyChooseUs.Update(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *Admin) WhyChooseUsDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.whyChooseUs.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Certifications ---

func (a *Admin) CertificationList(w http.ResponseWriter, r *http.Request) {
	items, err := a.certifications.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) CertificationCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Certification
	if !readJSON(w, r, &in) {
		return
	}
	if in.Name.EN == "" {
		respondError(w, http.StatusBadRequest, "name.en is required")
		return
	}
	item, err := a.certifications.Create(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (a *Admin) CertificationUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in models.Certification
	if !readJSON(w, r, &in) {
		return
	}
	in.ID = id
	item, err := a.certifications.Update(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *Admin) CertificationDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.certifications.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- FAQs ---

func (a *Admin) FAQList(w http.ResponseWriter, r *http.Request) {
	items, err := a.faqs.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) FAQCreate(w http.ResponseWriter, r *http.Request) {
	var in models.FAQ
	if !readJSON(w, r, &in) {
		return
	}
	if in.Question.EN == "" {
		respondError(w, http.StatusBadRequest, "question.en is required")
		return
	}
	item, err := a.faqs.Create(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (a *Admin) FAQUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in models.FAQ
	if !readJSON(w, r, &in) {
		return
	}
	in.ID = id
	item, err := a.faqs.Update(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *Admin) FAQDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.faqs.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Company info (singleton) ---

func (a *Admin) CompanyGet(w http.ResponseWriter, r *http.Request) {
	info, err := a.company.Get()
	if err != nil {
		storeError(w, err)
		return
	}
	if info == nil {
		respondError(w, http.StatusNotFound, "company info not set")
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// CompanySave creates or replaces the single company profile row.
func (a *Admin) CompanySave(w http.ResponseWriter, r *http.Request) {
	var in models.CompanyInfo
	if !readJSON(w, r, &in) {
		return
	}
	if in.Name.EN == "" {
		respondError(w, http.StatusBadRequest, "name.en is required")
		return
	}
	info, err := a.company.Save(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// --- Statistics (protected singleton) ---

func (a *Admin) StatisticsGet(w http.ResponseWriter, r *http.Request) {
	stats, err := a.statistics.Get()
	if err != nil {
		storeError(w, err)
		return
	}
	if stats == nil {
		respondError(w, http.StatusNotFound, "statistics not set")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// StatisticsCreate inserts the statistics row. A second create is
// rejected with 409 — there is only ever one row.
func (a *Admin) StatisticsCreate(w http.ResponseWriter, r *http.Request) {
	var in models.CompanyStatistics
	if !readJSON(w, r, &in) {
		return
	}
	stats, err := a.statistics.Create(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, stats)
}

func (a *Admin) StatisticsUpdate(w http.ResponseWriter, r *http.Request) {
	var in models.CompanyStatistics
	if !readJSON(w, r, &in) {
		return
	}
	if err := a.statistics.Update(&in); err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, &in)
}

// StatisticsDelete always refuses: the homepage counters must never
// disappear.
func (a *Admin) StatisticsDelete(w http.ResponseWriter, r *http.Request) {
	storeError(w, a.statistics.Delete())
}

// --- Page contents ---

func (a *Admin) PageContentList(w http.ResponseWriter, r *http.Request) {
	items, err := a.pageContents.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) PageContentGet(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if !models.ValidPageKey(page) {
		respondError(w, http.StatusBadRequest, "unknown page")
		return
	}
	item, err := a.pageContents.Find(models.PageKey(page))
	if err != nil {
		storeError(w, err)
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "page content not set")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// PageContentSave upserts the copy for one page. The page key comes from
// the URL, not the body, so a row can never be re-pointed at another page.
func (a *Admin) PageContentSave(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if !models.ValidPageKey(page) {
		respondError(w, http.StatusBadRequest, "unknown page")
		return
	}
	var in models.PageContent
	if !readJSON(w, r, &in) {
		return
	}
	in.Page = models.PageKey(page)
	item, err := a.pageContents.Save(&in)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// --- Contact messages ---

// MessageList returns contact messages, optionally filtered by status.
func (a *Admin) MessageList(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !models.ValidMessageStatus(status) {
		respondError(w, http.StatusBadRequest, "unknown status")
		return
	}
	items, err := a.messages.List(status)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) MessageGet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	item, err := a.messages.FindByID(id)
	if err != nil {
		storeError(w, err)
		return
	}
	if item == nil {
		respondError(w, http.StatusNotFound, "message not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// MessageUpdateStatus changes the triage label. The message body itself
// is immutable.
func (a *Admin) MessageUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var in struct {
		Status string `json:"status"`
	}
	if !readJSON(w, r, &in) {
		return
	}
	if !models.ValidMessageStatus(in.Status) {
		respondError(w, http.StatusBadRequest, "unknown status")
		return
	}
	if err := a.messages.UpdateStatus(id, models.MessageStatus(in.Status)); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Users (admin only) ---

func (a *Admin) UserList(w http.ResponseWriter, r *http.Request) {
	items, err := a.users.List()
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
		Role        string `json:"role"`
	}
	if !readJSON(w, r, &in) {
		return
	}
	if in.Email == "" || in.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}
	role := models.Role(in.Role)
	if role != models.RoleAdmin && role != models.RoleEditor {
		respondError(w, http.StatusBadRequest, "unknown role")
		return
	}
	user, err := a.users.Create(in.Email, in.Password, in.DisplayName, role)
	if err != nil {
		storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := a.users.Delete(id); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
