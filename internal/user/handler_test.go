package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/frahmantamala/hr-mock/api"
	"github.com/frahmantamala/hr-mock/internal/transport"
	"github.com/frahmantamala/hr-mock/internal/user"
	"github.com/frahmantamala/hr-mock/internal/user/memory"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const usersPath = "/testcompany/v1/meta/users/"

var _ = Describe("User Handler", func() {
	var (
		handler *user.Handler
		slogger *slog.Logger
		doc     *openapi3.T
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		service := user.NewService(memory.NewUserRepository(), slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = user.NewHandler(baseHandler, service)

		doc, err = api.Load(context.Background())
		Expect(err).NotTo(HaveOccurred())
	})

	It("should handle GET users request successfully", func() {
		req := httptest.NewRequest(http.MethodGet, usersPath, nil)
		w := httptest.NewRecorder()

		handler.GetUsers(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))
		Expect(w.Body.String()).To(MatchJSON(`{
			"1": {"id": 1, "employeeId": 1, "firstName": "John", "lastName": "Doe",
			      "email": "john.doe@bamboohr.com", "status": "enabled",
			      "lastLogin": "2011-03-19T10:16:00+00:00"},
			"3": {"id": 3, "employeeId": 2, "firstName": "Michael", "lastName": "Smith",
			      "email": "michael.smith@bamboohr.com", "status": "enabled",
			      "lastLogin": "2023-08-01T08:00:00+00:00"}
		}`))
	})

	It("should decode into the shape HR clients expect", func() {
		req := httptest.NewRequest(http.MethodGet, usersPath, nil)
		w := httptest.NewRecorder()

		handler.GetUsers(w, req)

		var response map[string]user.User
		err := json.NewDecoder(w.Body).Decode(&response)
		Expect(err).NotTo(HaveOccurred())

		for key, u := range response {
			Expect(u.HasEmployee()).To(BeTrue(), "record %s", key)
			Expect(u.LastLogin).NotTo(BeEmpty())
		}
	})

	It("should conform to the OpenAPI document", func() {
		req := httptest.NewRequest(http.MethodGet, usersPath, nil)
		w := httptest.NewRecorder()

		handler.GetUsers(w, req)

		route, err := api.UsersRoute(doc)
		Expect(err).NotTo(HaveOccurred())

		body, err := io.ReadAll(w.Body)
		Expect(err).NotTo(HaveOccurred())

		input := &openapi3filter.ResponseValidationInput{
			RequestValidationInput: &openapi3filter.RequestValidationInput{
				Request: req,
				Route:   route,
			},
			Status: w.Code,
			Header: w.Header(),
		}
		input.SetBodyBytes(body)

		Expect(openapi3filter.ValidateResponse(context.Background(), input)).To(Succeed())
	})

	Context("when the service fails", func() {
		BeforeEach(func() {
			repo := NewMockRepository()
			repo.SetShouldFail(true, errors.New("storage error"))
			handler = user.NewHandler(&transport.BaseHandler{Logger: slogger}, user.NewService(repo, slogger))
		})

		It("should respond with 500 and a message body", func() {
			req := httptest.NewRequest(http.MethodGet, usersPath, nil)
			w := httptest.NewRecorder()

			handler.GetUsers(w, req)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(MatchJSON(`{"message": "failed to get users"}`))
		})
	})
})
