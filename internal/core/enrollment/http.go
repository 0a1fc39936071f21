package enrollment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ozgekara/campus/internal/platform/middleware"
	requestutil "github.com/ozgekara/campus/internal/platform/request"
	"github.com/ozgekara/campus/internal/platform/respond"
	"github.com/ozgekara/campus/internal/platform/sec"
	"github.com/ozgekara/campus/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /enrollments.
//
// Admin endpoints take explicit ids; the /self and /my-courses endpoints
// derive the student from the token identity.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/enroll", handler.enroll)
		adminRoute.Get("/", handler.listEnrollments)
		adminRoute.Delete("/withdraw/{id}", handler.withdraw)
	})

	// Student self-service
	router.Group(func(studentRoute chi.Router) {
		studentRoute.Use(middleware.RequireRole(sec.RoleStudent))

		studentRoute.Post("/self/enroll", handler.selfEnroll)
		studentRoute.Get("/my-courses", handler.listMyCourses)
		studentRoute.Delete("/self/withdraw/{courseId}", handler.selfWithdraw)
	})

	return router
}

type enrollRequest struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}

type selfEnrollRequest struct {
	CourseID string `json:"courseId"`
}

func (handler *Handler) enroll(writer http.ResponseWriter, request *http.Request) {
	var input enrollRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	enrollment, err := handler.service.Enroll(request.Context(), input.StudentID, input.CourseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, enrollment)
}

func (handler *Handler) listEnrollments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	rows, total, err := handler.service.ListEnrollments(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "enrollments", rows, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) withdraw(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Withdraw(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, http.StatusOK, "enrollment withdrawn")
}

func (handler *Handler) selfEnroll(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input selfEnrollRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	enrollment, err := handler.service.SelfEnroll(request.Context(), claims.UserID, input.CourseID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, enrollment)
}

func (handler *Handler) listMyCourses(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	rows, total, err := handler.service.ListForAccount(request.Context(), claims.UserID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "enrollments", rows, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) selfWithdraw(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SelfWithdraw(request.Context(), claims.UserID, requestutil.Param(request, "courseId")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, http.StatusOK, "enrollment withdrawn")
}
