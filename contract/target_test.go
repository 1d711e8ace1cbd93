package contract_test

import (
	"github.com/andyle182810/apicheck/config"
	"github.com/andyle182810/apicheck/contract"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"
)

var _ = Describe("Target", func() {
	It("points a stub target at a local server carrying the stub key", func(ctx SpecContext) {
		stub, err := contract.Open(ctx, contract.Settings{Live: false, StubAPIKey: "k-1"}, config.Default(), zerolog.Nop())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() error { return stub.Close() })

		Expect(stub.Live).To(BeFalse())
		Expect(stub.Config.BaseURL).To(HavePrefix("http://127.0.0.1:"))
		Expect(stub.Config.BaseURL).To(HaveSuffix("/api"))
		Expect(stub.Config.DefaultHeaders()).To(HaveKeyWithValue("x-api-key", "k-1"))
		Expect(stub.HasAPIKey()).To(BeTrue())
	})

	It("uses the base configuration unchanged for a live target", func(ctx SpecContext) {
		base := config.Default()

		live, err := contract.Open(ctx, contract.Settings{Live: true, StubAPIKey: ""}, base, zerolog.Nop())
		Expect(err).NotTo(HaveOccurred())

		Expect(live.Config).To(BeIdenticalTo(base))
		Expect(live.Close()).To(Succeed())
	})
})
