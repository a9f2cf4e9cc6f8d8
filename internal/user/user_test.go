package user_test

import (
	"encoding/json"

	"github.com/frahmantamala/hr-mock/internal/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("User", func() {
	It("should omit employeeId from JSON when absent", func() {
		out, err := json.Marshal(user.User{ID: 2, FirstName: "Jane"})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).NotTo(ContainSubstring("employeeId"))
	})

	It("should keep a zero employeeId in JSON", func() {
		out, err := json.Marshal(user.User{ID: 4, EmployeeID: user.EmployeeID(0)})
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(ContainSubstring(`"employeeId":0`))
	})

	It("should treat a decoded record without employeeId as unlinked", func() {
		var u user.User
		Expect(json.Unmarshal([]byte(`{"id": 2, "firstName": "Jane"}`), &u)).To(Succeed())
		Expect(u.HasEmployee()).To(BeFalse())
	})

	Describe("Clone", func() {
		It("should not share employeeId pointers", func() {
			src := user.Users{"1": {ID: 1, EmployeeID: user.EmployeeID(1)}}
			cp := src.Clone()
			*cp["1"].EmployeeID = 42

			Expect(*src["1"].EmployeeID).To(Equal(1))
		})
	})

	Describe("LinkedToEmployee", func() {
		It("should preserve the original keys", func() {
			src := user.Users{
				"10": {ID: 1, EmployeeID: user.EmployeeID(5)},
				"20": {ID: 2},
			}
			Expect(src.LinkedToEmployee()).To(HaveKey("10"))
			Expect(src.LinkedToEmployee()).NotTo(HaveKey("20"))
			Expect(src).To(HaveLen(2))
		})
	})
})
