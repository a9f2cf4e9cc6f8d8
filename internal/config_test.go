package internal_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/frahmantamala/hr-mock/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestInternal(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Internal Suite")
}

var _ = Describe("Config", func() {
	var cfg *internal.Config

	BeforeEach(func() {
		cfg = internal.DefaultConfig()
	})

	It("should default to the upstream mock settings", func() {
		Expect(cfg.Validate()).To(Succeed())
		Expect(cfg.Server.Addr()).To(Equal("localhost:8000"))
		Expect(cfg.Mock.UsersPath()).To(Equal("/testcompany/v1/meta/users/"))
		Expect(cfg.Mock.Username).To(Equal("APIKEY"))
		Expect(cfg.Mock.Password).To(Equal("x"))
	})

	It("should reject an out of range port", func() {
		cfg.Server.Port = 70000
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("server config")))
	})

	It("should reject read_timeout below read_header_timeout", func() {
		cfg.Server.ReadTimeout = time.Second
		cfg.Server.ReadHeaderTimeout = 2 * time.Second
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("read_timeout")))
	})

	It("should reject a company spanning several path segments", func() {
		cfg.Mock.Company = "a/b"
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("single path segment")))
	})

	It("should require a username but allow an empty password", func() {
		cfg.Mock.Password = ""
		Expect(cfg.Validate()).To(Succeed())

		cfg.Mock.Username = ""
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("username is required")))
	})

	It("should report every invalid section at once", func() {
		cfg.Server.Port = 0
		cfg.Logging.Level = "trace"
		cfg.Logging.Format = "xml"

		err := cfg.Validate()
		Expect(err).To(MatchError(ContainSubstring("server config")))
		Expect(err).To(MatchError(ContainSubstring("logging config")))
	})
})

var _ = Describe("AppError", func() {
	It("should serialise as a bare message", func() {
		Expect(internal.ErrUnauthorized).To(BeAssignableToTypeOf(&internal.AppError{}))
		Expect(internal.ErrUnauthorized.StatusCode).To(Equal(http.StatusUnauthorized))

		out, err := internal.ErrUnauthorized.MarshalJSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(MatchJSON(`{"message": "Unauthorized"}`))
	})

	It("should be found through wrapping", func() {
		cause := errors.New("boom")
		wrapped := errors.Join(errors.New("outer"), internal.NewInternalError("failed", cause))

		appErr, ok := internal.IsAppError(wrapped)
		Expect(ok).To(BeTrue())
		Expect(appErr.StatusCode).To(Equal(http.StatusInternalServerError))
		Expect(errors.Is(appErr, cause)).To(BeTrue())
	})

	It("should not mutate sentinels when adding a cause", func() {
		withCause := internal.ErrUnauthorized.WithCause(errors.New("bad password"))

		Expect(withCause.Cause).To(HaveOccurred())
		Expect(internal.ErrUnauthorized.Cause).To(BeNil())
	})
})
