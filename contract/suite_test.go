package contract_test

import (
	"testing"

	"github.com/andyle182810/apicheck/config"
	"github.com/andyle182810/apicheck/contract"
	"github.com/andyle182810/apicheck/httpclient"
	"github.com/andyle182810/apicheck/logutil"
	"github.com/andyle182810/apicheck/reqres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	target   *contract.Target
	client   *reqres.Client
	logLevel string
)

// suiteLogger routes client logs to the spec output, shown for failed specs
// or with -v.
func suiteLogger() httpclient.Option {
	return httpclient.WithLogger(logutil.New(GinkgoWriter, logutil.FormatConsole, logLevel))
}

var _ = BeforeSuite(func(ctx SpecContext) {
	settings, err := contract.LoadSettings()
	Expect(err).NotTo(HaveOccurred())

	cfg, err := config.Get()
	Expect(err).NotTo(HaveOccurred())

	logLevel = cfg.LogLevel
	logger := logutil.New(GinkgoWriter, logutil.FormatConsole, logLevel)

	target, err = contract.Open(ctx, settings, cfg, logger)
	Expect(err).NotTo(HaveOccurred())

	DeferCleanup(func() error { return target.Close() })

	client = target.Client(suiteLogger())
	DeferCleanup(client.Close)
})

func TestContract(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Contract Suite")
}
