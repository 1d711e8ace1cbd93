package contract_test

import (
	"net/http"

	"github.com/andyle182810/apicheck/reqres"
	"github.com/andyle182810/apicheck/schema"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Health", func() {
	It("lists the second page of users", func(ctx SpecContext) {
		result, err := client.ListUsers(ctx, 2)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.StatusCode()).To(Equal(http.StatusOK))
		Expect(result.Value.Page).To(Equal(2))
		Expect(result.Response.Body).To(schema.MatchSchema(schema.UserPage()))
	})
})

var _ = Describe("Users", func() {
	It("returns user 2 matching the user schema", func(ctx SpecContext) {
		result, err := client.GetUser(ctx, 2)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.StatusCode()).To(Equal(http.StatusOK))
		Expect(result.Value.Data.ID).To(Equal(2))
		Expect(result.Value.Data).To(schema.MatchSchema(schema.User()))

		By("validating the same value twice")
		Expect(result.Value.Data).To(schema.MatchSchema(schema.User()))
	})

	It("updates user 1", func(ctx SpecContext) {
		result, err := client.UpdateUser(ctx, 1, reqres.UpdateUserRequest{Name: "", Job: "zion resident"})

		Expect(err).NotTo(HaveOccurred())
		Expect(result.StatusCode()).To(Equal(http.StatusOK))
		Expect(result.Value.Job).To(Equal("zion resident"))
		Expect(result.Value.UpdatedAt).NotTo(BeEmpty())
	})

	It("creates a user", func(ctx SpecContext) {
		result, err := client.CreateUser(ctx, reqres.CreateUserRequest{Name: "morpheus", Job: "leader"})

		Expect(err).NotTo(HaveOccurred())
		Expect(result.StatusCode()).To(Equal(http.StatusCreated))
		Expect(result.Value).To(schema.MatchSchema(schema.CreatedUser()))
		Expect(result.Value.Name).To(Equal("morpheus"))
	})

	It("reports a missing user as a rejected call", func(ctx SpecContext) {
		result, err := client.GetUser(ctx, 23)

		Expect(err).To(HaveOccurred())
		Expect(result.StatusCode()).To(Equal(http.StatusNotFound))
	})
})

var _ = Describe("Login", func() {
	It("issues a token for a known user", func(ctx SpecContext) {
		result, err := client.Login(ctx, reqres.LoginRequest{Email: "eve.holt@reqres.in", Password: "cityslicka"})

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(schema.MatchSchema(schema.Login()))
	})

	It("rejects a login without password", func(ctx SpecContext) {
		result, err := client.Login(ctx, reqres.LoginRequest{Email: "peter@klaven", Password: ""})

		Expect(err).To(HaveOccurred())
		Expect(result.StatusCode()).To(Equal(http.StatusBadRequest))
		Expect(reqres.DecodeError(result.Response)).To(Equal("Missing password"))
	})
})
