package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/guidy-app/joblight/internal/infrastructure/config"
)

// loadResult contains metrics for a single request
type loadResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Err          string
}

// loadStats contains aggregated test statistics
type loadStats struct {
	mu            sync.Mutex
	Total         int
	Successful    int
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
	UserCounts    map[uint64]int
	ScenarioStats map[string]int
}

func (s *loadStats) add(r loadResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.Success {
		s.Successful++
	} else {
		s.Failed++
		s.ErrorCounts[r.Err]++
	}
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	s.ScenarioStats[r.Scenario]++
}

// loadScenario builds one request against the API for a user
type loadScenario struct {
	Name  string
	Build func(baseURL string, userID uint64) (*http.Request, error)
}

type loadOptions struct {
	concurrency int
	requests    int
	users       []uint
	baseURL     string
	delay       time.Duration
	service     string
	portfolio   string
	// reuse sends the same request_id twice per user to check debit idempotency
	reuse bool
}

func loadTestCmd() *cobra.Command {
	lo := &loadOptions{}

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Send concurrent AI token debits and portfolio views to a running server",
		Long: `Drive a running API with concurrent requests and report throughput and latency.

Users are authenticated with tokens signed by auth.jwtSecret, so the command must run
with the same configuration as the server. Debits for one user are serialised by the
wallet queue; the balance of every user should end non-negative whatever the concurrency.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if len(lo.users) == 0 {
				return fmt.Errorf("at least one user id is required")
			}
			stats := runLoadTest(cmd.Context(), cmd.OutOrStdout(), cfg.Auth, lo)
			printLoadResults(cmd.OutOrStdout(), stats)
			return nil
		},
	}
	cmd.Flags().IntVarP(&lo.concurrency, "concurrency", "c", 5, "number of concurrent workers")
	cmd.Flags().IntVarP(&lo.requests, "requests", "n", 100, "total number of requests")
	cmd.Flags().UintSliceVarP(&lo.users, "users", "u", []uint{1, 2, 3}, "user ids to spread the load across")
	cmd.Flags().StringVar(&lo.baseURL, "url", "http://localhost:8080", "base URL of the API")
	cmd.Flags().DurationVar(&lo.delay, "delay", 100*time.Millisecond, "pause between requests of a worker")
	cmd.Flags().StringVar(&lo.service, "service", "cv_review", "AI service to debit")
	cmd.Flags().StringVar(&lo.portfolio, "portfolio", "", "portfolio identifier to view (views are skipped when empty)")
	cmd.Flags().BoolVar(&lo.reuse, "reuse-request-ids", false, "replay request ids to exercise idempotent debits")
	return cmd
}

func loadScenarios(auth config.AuthConfig, lo *loadOptions) []loadScenario {
	var (
		mu       sync.Mutex
		lastByID = map[uint64]string{}
	)
	requestID := func(userID uint64) string {
		mu.Lock()
		defer mu.Unlock()
		if id, ok := lastByID[userID]; ok && lo.reuse && rand.Intn(2) == 0 {
			return id
		}
		id := uuid.NewString()
		lastByID[userID] = id
		return id
	}

	scenarios := []loadScenario{
		{
			Name: "use-service",
			Build: func(baseURL string, userID uint64) (*http.Request, error) {
				body, _ := json.Marshal(map[string]string{"service": lo.service, "request_id": requestID(userID)})
				return authorized(auth, userID, http.MethodPost, baseURL+"/api/payment/ai/use-service", body)
			},
		},
		{
			Name: "check-balance",
			Build: func(baseURL string, userID uint64) (*http.Request, error) {
				return authorized(auth, userID, http.MethodPost, baseURL+"/api/payment/ai/check-balance", nil)
			},
		},
	}
	if lo.portfolio != "" {
		scenarios = append(scenarios, loadScenario{
			Name: "portfolio-view",
			Build: func(baseURL string, _ uint64) (*http.Request, error) {
				req, err := http.NewRequest(http.MethodGet, baseURL+"/portfolio/"+lo.portfolio, nil)
				if err == nil {
					// a distinct user agent per request counts as a distinct visitor
					req.Header.Set("User-Agent", "paymentctl-loadtest/"+uuid.NewString())
				}
				return req, err
			},
		})
	}
	return scenarios
}

func authorized(auth config.AuthConfig, userID uint64, method, url string, body []byte) (*http.Request, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":            strconv.FormatUint(userID, 10),
		"iss":            auth.Issuer,
		"email_verified": true,
		"exp":            time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(auth.JWTSecret))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func runLoadTest(ctx context.Context, out io.Writer, auth config.AuthConfig, lo *loadOptions) *loadStats {
	scenarios := loadScenarios(auth, lo)
	stats := &loadStats{
		Total:         lo.requests,
		ErrorCounts:   map[string]int{},
		UserCounts:    map[uint64]int{},
		ScenarioStats: map[string]int{},
		ResponseTimes: make([]time.Duration, 0, lo.requests),
	}

	fmt.Fprintf(out, "Load testing %s with %d workers, %d requests, users %v\n", lo.baseURL, lo.concurrency, lo.requests, lo.users)

	jobs := make(chan int, lo.requests)
	for i := 0; i < lo.requests; i++ {
		jobs <- i
	}
	close(jobs)

	client := &http.Client{Timeout: 10 * time.Second}
	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < lo.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if ctx.Err() != nil {
					return
				}
				if lo.delay > 0 {
					time.Sleep(lo.delay)
				}

				userID := uint64(lo.users[rand.Intn(len(lo.users))])
				scenario := scenarios[rand.Intn(len(scenarios))]

				stats.mu.Lock()
				stats.UserCounts[userID]++
				stats.mu.Unlock()

				stats.add(send(ctx, client, scenario, lo.baseURL, userID))
			}
		}()
	}
	wg.Wait()

	stats.TotalTime = time.Since(start)
	return stats
}

func send(ctx context.Context, client *http.Client, scenario loadScenario, baseURL string, userID uint64) loadResult {
	result := loadResult{Scenario: scenario.Name}

	req, err := scenario.Build(baseURL, userID)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	begin := time.Now()
	resp, err := client.Do(req.WithContext(ctx))
	result.ResponseTime = time.Since(begin)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	result.StatusCode = resp.StatusCode
	// 402 is the expected answer once a wallet runs dry
	result.Success = resp.StatusCode < 300 || resp.StatusCode == http.StatusPaymentRequired
	if !result.Success {
		result.Err = fmt.Sprintf("%s: HTTP %d", scenario.Name, resp.StatusCode)
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printLoadResults(out io.Writer, stats *loadStats) {
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	done := stats.Successful + stats.Failed
	tps := 0.0
	if stats.TotalTime > 0 {
		tps = float64(done) / stats.TotalTime.Seconds()
	}

	fmt.Fprintln(out, "\n================= RESULTS =================")
	fmt.Fprintf(out, "Requests:   %d sent, %d ok, %d failed\n", done, stats.Successful, stats.Failed)
	fmt.Fprintf(out, "Duration:   %.2fs (%.2f req/s)\n", stats.TotalTime.Seconds(), tps)
	if len(sorted) > 0 {
		fmt.Fprintf(out, "Latency:    avg %v, min %v, max %v\n", avg, sorted[0], sorted[len(sorted)-1])
	}
	fmt.Fprintf(out, "Percentile: p50 %v, p90 %v, p95 %v, p99 %v\n",
		percentile(sorted, 50), percentile(sorted, 90), percentile(sorted, 95), percentile(sorted, 99))

	fmt.Fprintln(out, "\n----------------- SCENARIOS -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Fprintf(out, "%-15s %d\n", name, count)
	}

	fmt.Fprintln(out, "\n----------------- USERS -----------------")
	for userID, count := range stats.UserCounts {
		fmt.Fprintf(out, "user %-10d %d\n", userID, count)
	}

	if stats.Failed > 0 {
		fmt.Fprintln(out, "\n----------------- ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Fprintf(out, "%-40s %d\n", msg, count)
		}
	}
}
