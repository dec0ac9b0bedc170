package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/errgroup"
)

// This probe fires concurrent HD unlocks for the same users and then checks that no
// balance went negative. Point it at a local stack: every unlock calls the image provider.

type generationRecord struct {
	ID string `json:"id"`
}

type creditsResponse struct {
	Credits int64 `json:"credits"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	mu            sync.Mutex
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	UserStats     map[string]int
}

func (s *TestStats) record(r TestResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.UserStats[r.UserID]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	if r.Err != nil {
		s.ErrorCounts[r.Err.Error()]++
		return
	}
	s.StatusCounts[r.StatusCode]++
}

type client struct {
	baseURL string
	secret  []byte
	http    *http.Client
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent requests")
	perUser := flag.Int("n", 20, "HD unlock attempts per user")
	usersStr := flag.String("u", "load_user_1,load_user_2", "Comma-separated list of user IDs")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("PAC_JWT_SECRET"), "HS256 secret the API verifies tokens with")
	style := flag.String("style", "chibi", "Style to unlock")
	flag.Parse()

	if *secret == "" {
		fmt.Println("a JWT secret is required (-secret or PAC_JWT_SECRET)")
		os.Exit(2)
	}

	var users []string
	for _, id := range strings.Split(*usersStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			users = append(users, id)
		}
	}

	c := &client{baseURL: strings.TrimRight(*baseURL, "/"), secret: []byte(*secret), http: &http.Client{Timeout: 90 * time.Second}}
	ctx := context.Background()

	fmt.Printf("HD unlock probe: %d users, %d attempts each, concurrency %d\n", len(users), *perUser, *concurrency)

	generations := make(map[string]string, len(users))
	for _, user := range users {
		balance, err := c.balance(ctx, user)
		if err != nil {
			fmt.Printf("Failed to read balance for %s: %v\n", user, err)
			os.Exit(1)
		}
		genID, err := c.createGeneration(ctx, user, *style)
		if err != nil {
			fmt.Printf("Failed to create generation for %s: %v\n", user, err)
			os.Exit(1)
		}
		generations[user] = genID
		fmt.Printf("User %s starts with %d credits, generation %s\n", user, balance, genID)
	}

	stats := &TestStats{
		StatusCounts: make(map[int]int),
		ErrorCounts:  make(map[string]int),
		UserStats:    make(map[string]int),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)

	startTime := time.Now()
	for i := 0; i < *perUser; i++ {
		for _, user := range users {
			user := user
			g.Go(func() error {
				stats.record(c.unlock(gctx, user, generations[user], *style))
				return nil
			})
		}
	}
	_ = g.Wait()
	totalTime := time.Since(startTime)

	negative := false
	fmt.Println("\n----------------- FINAL BALANCES -----------------")
	for _, user := range users {
		balance, err := c.balance(ctx, user)
		if err != nil {
			fmt.Printf("%-20s: error %v\n", user, err)
			continue
		}
		if balance < 0 {
			negative = true
		}
		fmt.Printf("%-20s: %d\n", user, balance)
	}

	printResults(stats, totalTime)

	fmt.Println("\n================= CONCLUSION =================")
	if negative {
		fmt.Println("❌ A balance went negative under concurrent unlocks")
		os.Exit(1)
	}
	fmt.Println("✅ No balance went negative")
}

func (c *client) token(userID string) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
	}).SignedString(c.secret)
}

func (c *client) do(ctx context.Context, method, path, userID string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	token, err := c.token(userID)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}

func (c *client) balance(ctx context.Context, userID string) (int64, error) {
	resp, err := c.do(ctx, http.MethodGet, "/credits", userID, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var out creditsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.Credits, nil
}

func (c *client) createGeneration(ctx context.Context, userID, style string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/generations", userID, map[string]any{
		"breed":        "corgi",
		"style":        style,
		"preview_urls": []string{"https://example.com/preview.png"},
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var out generationRecord
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *client) unlock(ctx context.Context, userID, generationID, style string) TestResult {
	startTime := time.Now()
	resp, err := c.do(ctx, http.MethodPost, "/generate-hd", userID, map[string]any{
		"generation_id": generationID,
		"style":         style,
	})
	result := TestResult{UserID: userID, ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Err = err
		return result
	}
	resp.Body.Close()
	result.StatusCode = resp.StatusCode
	return result
}

func printResults(stats *TestStats, totalTime time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	total := len(stats.ResponseTimes)
	if total == 0 {
		fmt.Println("No requests were made")
		return
	}

	sorted := make([]time.Duration, total)
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", total)
	fmt.Printf("Total Test Time:     %.2f seconds\n", totalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(total)/totalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", sum/time.Duration(total))
	fmt.Printf("Minimum Response:    %v\n", sorted[0])
	fmt.Printf("Maximum Response:    %v\n", sorted[total-1])
	fmt.Printf("P50 Response:        %v\n", sorted[total*50/100])
	fmt.Printf("P95 Response:        %v\n", sorted[total*95/100])

	fmt.Println("\n----------------- STATUS DISTRIBUTION -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("HTTP %d: %d (%.1f%%)\n", code, count, float64(count)/float64(total)*100)
	}

	fmt.Println("\n----------------- USER DISTRIBUTION -----------------")
	for user, count := range stats.UserStats {
		fmt.Printf("%-20s: %d requests\n", user, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
