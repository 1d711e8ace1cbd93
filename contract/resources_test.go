package contract_test

import (
	"io"
	"net/http"

	"github.com/andyle182810/apicheck/httpclient"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/rs/zerolog"
)

var _ = Describe("Resources", func() {
	BeforeEach(func() {
		if !target.HasAPIKey() {
			Skip("no API key configured for this target")
		}
	})

	It("lists resources", func(ctx SpecContext) {
		result, err := client.ListResources(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.StatusCode()).To(Equal(http.StatusOK))
		Expect(result.Value.Data).NotTo(BeEmpty())
	})

	It("returns resource 2", func(ctx SpecContext) {
		result, err := client.GetResource(ctx, 2)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value.Data.ID).To(Equal(2))
		Expect(result.Value.Data.Name).NotTo(BeEmpty())
	})
})

var _ = Describe("Unauthorized", func() {
	It("logs the 401 and rejects the call", func(ctx SpecContext) {
		if !target.Live && !target.HasAPIKey() {
			Skip("the stub only guards resources when it has a key")
		}

		logs := gbytes.NewBuffer()
		keyless := target.ClientWithoutKey(httpclient.WithLogger(zerolog.New(io.MultiWriter(logs, GinkgoWriter))))
		DeferCleanup(keyless.Close)

		result, err := keyless.ListResources(ctx)

		Expect(err).To(MatchError(httpclient.ErrStatus))
		Expect(httpclient.StatusCode(err)).To(Equal(http.StatusUnauthorized))
		Expect(result.StatusCode()).To(Equal(http.StatusUnauthorized))

		Expect(logs).To(gbytes.Say(`"level":"error"`))
		Expect(logs).To(gbytes.Say(`"status":401`))
		Expect(logs).To(gbytes.Say(`"message":"HTTP Error"`))
	})
})
