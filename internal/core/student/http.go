package student

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ozgekara/campus/internal/core/enrollment"
	"github.com/ozgekara/campus/internal/platform/middleware"
	requestutil "github.com/ozgekara/campus/internal/platform/request"
	"github.com/ozgekara/campus/internal/platform/respond"
	"github.com/ozgekara/campus/internal/platform/sec"
	"github.com/ozgekara/campus/internal/platform/validate"
	"github.com/ozgekara/campus/pkg/pagination"
)

// EnrollmentLister resolves the calling account's enrollments. Implemented by
// the enrollment service; declared here to keep the dependency one-way.
type EnrollmentLister interface {
	ListForAccount(context context.Context, accountID string, limit, offset int) ([]*enrollment.Resolved, int, error)
}

type Handler struct {
	service     *Service
	enrollments EnrollmentLister
}

func NewHandler(service *Service, enrollments EnrollmentLister) *Handler {
	return &Handler{service: service, enrollments: enrollments}
}

// Routes returns the router for /students.
//
// Administrative CRUD is gated behind the admin role; the /profile/me and
// /enrollments/me endpoints are the student self-service surface.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Get("/", handler.listStudents)
		adminRoute.Post("/", handler.createStudent)
		adminRoute.Get("/{id}", handler.getStudent)
		adminRoute.Put("/{id}", handler.updateStudent)
		adminRoute.Delete("/{id}", handler.deleteStudent)
	})

	// Student self-service
	router.Group(func(studentRoute chi.Router) {
		studentRoute.Use(middleware.RequireRole(sec.RoleStudent))

		studentRoute.Get("/profile/me", handler.getOwnProfile)
		studentRoute.Put("/profile/me", handler.updateOwnProfile)
		studentRoute.Get("/enrollments/me", handler.listOwnEnrollments)
	})

	return router
}

type createStudentRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"`
}

type updateStudentRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	BirthDate *string `json:"birthDate"`
}

// toInput parses the optional wire date into the service-level patch.
func (req updateStudentRequest) toInput() (UpdateInput, error) {
	input := UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if req.BirthDate != nil {
		parsed, err := validate.ParseDate(FieldBirthDate, *req.BirthDate)
		if err != nil {
			return UpdateInput{}, err
		}
		input.BirthDate = &parsed
	}

	return input, nil
}

func (handler *Handler) listStudents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	students, total, err := handler.service.ListStudents(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "students", students, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getStudent(writer http.ResponseWriter, request *http.Request) {
	student, err := handler.service.GetStudent(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, student)
}

func (handler *Handler) createStudent(writer http.ResponseWriter, request *http.Request) {
	var input createStudentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	birthDate, err := validate.ParseDate(FieldBirthDate, input.BirthDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	student := &Student{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		BirthDate: birthDate,
	}

	if err := handler.service.CreateStudent(request.Context(), student); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, student)
}

func (handler *Handler) updateStudent(writer http.ResponseWriter, request *http.Request) {
	var payload updateStudentRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := payload.toInput()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	student, err := handler.service.UpdateStudent(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, student)
}

func (handler *Handler) deleteStudent(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteStudent(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, http.StatusOK, "student and related records deleted")
}

func (handler *Handler) getOwnProfile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	student, err := handler.service.GetOwnProfile(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, student)
}

func (handler *Handler) updateOwnProfile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload updateStudentRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := payload.toInput()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	student, err := handler.service.UpdateOwnProfile(request.Context(), claims.UserID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, student)
}

func (handler *Handler) listOwnEnrollments(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	rows, total, err := handler.enrollments.ListForAccount(request.Context(), claims.UserID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "enrollments", rows, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
