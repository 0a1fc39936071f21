package course

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ozgekara/campus/internal/core/enrollment"
	"github.com/ozgekara/campus/internal/platform/middleware"
	requestutil "github.com/ozgekara/campus/internal/platform/request"
	"github.com/ozgekara/campus/internal/platform/respond"
	"github.com/ozgekara/campus/internal/platform/sec"
	"github.com/ozgekara/campus/pkg/pagination"
)

// EnrollmentLister resolves the enrollments of a single course. Implemented
// by the enrollment service; declared here to keep the dependency one-way.
type EnrollmentLister interface {
	ListForCourse(context context.Context, courseID string, limit, offset int) ([]*enrollment.Resolved, int, error)
}

type Handler struct {
	service     *Service
	enrollments EnrollmentLister
}

func NewHandler(service *Service, enrollments EnrollmentLister) *Handler {
	return &Handler{service: service, enrollments: enrollments}
}

// Routes returns the router for /courses. The whole surface is admin only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/", handler.listCourses)
	router.Post("/", handler.createCourse)
	router.Get("/{id}", handler.getCourse)
	router.Put("/{id}", handler.updateCourse)
	router.Delete("/{id}", handler.deleteCourse)
	router.Get("/{courseId}/enrollments", handler.listCourseEnrollments)

	return router
}

type courseRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) listCourses(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	courses, total, err := handler.service.ListCourses(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "courses", courses, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCourse(writer http.ResponseWriter, request *http.Request) {
	course, err := handler.service.GetCourse(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

func (handler *Handler) createCourse(writer http.ResponseWriter, request *http.Request) {
	var input courseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course := &Course{Name: input.Name}
	if err := handler.service.CreateCourse(request.Context(), course); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, course)
}

func (handler *Handler) updateCourse(writer http.ResponseWriter, request *http.Request) {
	var input courseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	course, err := handler.service.UpdateCourse(request.Context(), requestutil.Param(request, "id"), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

func (handler *Handler) deleteCourse(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCourse(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, http.StatusOK, "course deleted")
}

func (handler *Handler) listCourseEnrollments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	rows, total, err := handler.enrollments.ListForCourse(request.Context(), requestutil.Param(request, "courseId"), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "enrollments", rows, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
