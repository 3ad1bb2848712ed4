package handlers

import (
	"net/http"

	"campus-placement-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles HTTP requests that record contact with candidates
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// PostJob posts a job
// @Summary Post a job
// @Description Post a job under the caller's effective organization identity. Secondaries post on behalf of their primary.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body service.PostJobRequest true "Job data"
// @Success 201 {object} service.JobResponse "Successfully posted job"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not an organization account"
// @Security BearerAuth
// @Router /jobs [post]
func (h *ContactHandler) PostJob(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req service.PostJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.contactService.PostJob(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// CreateResume stores a resume for the calling student
// @Summary Create a resume
// @Description Store a resume for the calling student
// @Tags applications
// @Accept json
// @Produce json
// @Param resume body service.CreateResumeRequest true "Resume data"
// @Success 201 {object} service.ResumeResponse "Successfully created resume"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a student"
// @Security BearerAuth
// @Router /resumes [post]
func (h *ContactHandler) CreateResume(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req service.CreateResumeRequest
	if !bindJSON(c, &req) {
		return
	}

	resume, err := h.contactService.CreateResume(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resume)
}

// Apply records the calling student's application to a job
// @Summary Apply to a job
// @Description Apply to a job with one of the caller's resumes. The job's owner gains a talent relationship with the student.
// @Tags applications
// @Accept json
// @Produce json
// @Param application body service.ApplyRequest true "Application data"
// @Success 201 {object} service.ContactResponse "Successfully applied"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a student or does not own the resume"
// @Failure 404 {object} ErrorResponse "Job or resume not found"
// @Failure 409 {object} ErrorResponse "Already applied to this job"
// @Security BearerAuth
// @Router /applications [post]
func (h *ContactHandler) Apply(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req service.ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.contactService.Apply(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ScheduleInterview schedules an interview with a candidate
// @Summary Schedule an interview
// @Description Schedule an interview with a candidate, optionally for an application the caller may manage
// @Tags interviews
// @Accept json
// @Produce json
// @Param interview body service.ScheduleInterviewRequest true "Interview data"
// @Success 201 {object} service.ContactResponse "Successfully scheduled interview"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller may not manage the application"
// @Failure 404 {object} ErrorResponse "Candidate or application not found"
// @Security BearerAuth
// @Router /interviews [post]
func (h *ContactHandler) ScheduleInterview(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req service.ScheduleInterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.contactService.ScheduleInterview(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// IssueOffer extends an offer to a candidate
// @Summary Issue an offer
// @Description Extend an offer to a candidate. The relationship moves to hired.
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body service.IssueOfferRequest true "Offer data"
// @Success 201 {object} service.ContactResponse "Successfully issued offer"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller may not manage the interview or application"
// @Failure 404 {object} ErrorResponse "Candidate, interview or application not found"
// @Security BearerAuth
// @Router /offers [post]
func (h *ContactHandler) IssueOffer(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req service.IssueOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.contactService.IssueOffer(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Bookmark bookmarks a candidate
// @Summary Bookmark a candidate
// @Description Bookmark a candidate for the caller's organization. Bookmarking again updates the note.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body service.BookmarkRequest true "Bookmark data"
// @Success 200 {object} service.ContactResponse "Successfully bookmarked candidate"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Security BearerAuth
// @Router /bookmarks [post]
func (h *ContactHandler) Bookmark(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req service.BookmarkRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.contactService.Bookmark(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// OpenConversation opens a conversation with a candidate
// @Summary Open a conversation
// @Description Open a conversation between the caller's organization and a candidate
// @Tags conversations
// @Accept json
// @Produce json
// @Param conversation body service.OpenConversationRequest true "Conversation data"
// @Success 201 {object} service.ContactResponse "Successfully opened conversation"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Security BearerAuth
// @Router /conversations [post]
func (h *ContactHandler) OpenConversation(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}
	var req service.OpenConversationRequest
	if !bindJSON(c, &req) {
		return
	}

	response, err := h.contactService.OpenConversation(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
