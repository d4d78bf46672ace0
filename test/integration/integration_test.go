package integration

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tyrone-yanaga/product-launcher/internal/config"
	"github.com/tyrone-yanaga/product-launcher/internal/display"
	"github.com/tyrone-yanaga/product-launcher/internal/optimizer"
	"github.com/tyrone-yanaga/product-launcher/internal/output"
	"github.com/tyrone-yanaga/product-launcher/internal/session"
)

const presetPath = "../testdata/launch_preset.yaml"

// priceServer answers every request with an optimal price derived from maxSalesPrice,
// optionally holding the response until release is closed.
func priceServer(t *testing.T, hold func(maxPrice string) <-chan struct{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/optimize-sales" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": "bad form"}`)
			return
		}
		if _, _, err := r.FormFile("file"); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error": "No file provided"}`)
			return
		}
		maxPrice := r.FormValue("maxSalesPrice")
		if hold != nil {
			if ch := hold(maxPrice); ch != nil {
				<-ch
			}
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"optimalPrice": %s, "totalRevenue": 4200.5, "totalProfit": 1500,
			"averageVolume": 99.5, "monthlyData": [{"month": "January", "revenue": 4200.5, "profit": 1500, "volume": 99.5}]}`,
			maxPrice)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func clientFor(srv *httptest.Server) *optimizer.Client {
	cfg := config.Default()
	cfg.Optimizer.BaseURL = srv.URL
	return optimizer.NewClient(cfg.Optimizer, zap.NewNop())
}

func TestEndToEndOptimization(t *testing.T) {
	srv := priceServer(t, nil)

	preset, err := config.NewInputParser().LoadFromFile(presetPath)
	require.NoError(t, err)
	file, err := config.LoadSelectedFile(preset.FilePath())
	require.NoError(t, err)
	assert.Equal(t, "sales_history.csv", file.Name)

	state := session.New(zap.NewNop()).Submit(context.Background(), clientFor(srv), file, preset.Inputs)
	require.Equal(t, session.Success, state.Kind, state.Message)
	assert.NotEmpty(t, state.RequestID)

	model := display.NewProjector(config.Default().Display.LanguageTag()).Project(state.Result)
	assert.Equal(t, "30.00", model.OptimalPrice)
	assert.Equal(t, "$4,200.5", model.TotalRevenue)
	assert.Equal(t, "$1,500", model.TotalProfit)
	assert.Equal(t, "100", model.AverageVolume)

	for _, name := range output.FormatNames() {
		data, err := output.GetFormatterByName(name).Format(model)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestEndToEndServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": "Maximum price must be greater than viable price"}`)
	}))
	t.Cleanup(srv.Close)

	preset, err := config.NewInputParser().LoadFromFile(presetPath)
	require.NoError(t, err)
	file, err := config.LoadSelectedFile(preset.FilePath())
	require.NoError(t, err)

	state := session.New(nil).Submit(context.Background(), clientFor(srv), file, preset.Inputs)
	assert.Equal(t, session.Error, state.Kind)
	assert.Equal(t, session.GenericFailureMessage, state.Message)
	assert.Nil(t, state.Result)
}

func TestLastResponseWinsOverHTTP(t *testing.T) {
	firstRelease := make(chan struct{})
	srv := priceServer(t, func(maxPrice string) <-chan struct{} {
		if maxPrice == "30" {
			return firstRelease
		}
		return nil
	})
	client := clientFor(srv)

	preset, err := config.NewInputParser().LoadFromFile(presetPath)
	require.NoError(t, err)
	file, err := config.LoadSelectedFile(preset.FilePath())
	require.NoError(t, err)

	sess := session.New(zap.NewNop())

	first, err := sess.Begin(file, preset.Inputs)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		result, err := client.Optimize(context.Background(), first.Payload, first.RequestID)
		sess.Resolve(first, result, err)
	}()

	newer := preset.Inputs
	newer.MaxSalesPrice = "45"
	second, err := sess.Begin(file, newer)
	require.NoError(t, err)
	result, err := client.Optimize(context.Background(), second.Payload, second.RequestID)
	require.True(t, sess.Resolve(second, result, err))

	close(firstRelease)
	wg.Wait()

	state := sess.State()
	require.Equal(t, session.Success, state.Kind)
	assert.Equal(t, 45.0, state.Result.OptimalPrice)
	assert.Equal(t, second.RequestID, state.RequestID)
}
