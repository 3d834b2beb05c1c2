package dna

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fyodor12344/DNA-ANALYZER/config"
)

// maxSequenceLength caps API input
const maxSequenceLength = 100000

// rateLimiter is a simple in-memory per-IP sliding window
type rateLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	requests map[string][]time.Time
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		window:   window,
		max:      max,
		requests: make(map[string][]time.Time),
	}
}

// allow records a request for the IP and reports whether it is within
// the window's limit
func (r *rateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.window)
	kept := r.requests[ip][:0]
	for _, at := range r.requests[ip] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= r.max {
		r.requests[ip] = kept
		return false
	}

	r.requests[ip] = append(kept, time.Now())
	return true
}

// Server is the HTTP JSON API over the analysis functions
type Server struct {
	conf    *config.Config
	limiter *rateLimiter
}

// NewServer returns a Server configured with c
func NewServer(c *config.Config) *Server {
	return &Server{
		conf:    c,
		limiter: newRateLimiter(c.Server.RateLimit, time.Minute),
	}
}

// ListenAndServe starts the API on the configured address. Blocks
func (s *Server) ListenAndServe() error {
	stderr.Printf("listening on %s\n", s.conf.Server.Addr)
	return http.ListenAndServe(s.conf.Server.Addr, s.Handler())
}

// Handler builds the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.health)
	mux.HandleFunc("/api/analyze", s.limit(s.analyze))
	mux.HandleFunc("/api/mutations", s.limit(s.mutations))
	mux.HandleFunc("/api/align", s.limit(s.align))
	mux.HandleFunc("/api/crispr", s.limit(s.crispr))
	mux.HandleFunc("/api/primers", s.limit(s.primers))
	return mux
}

// limit wraps a handler with the per-IP rate limit. The health check
// is exempt
func (s *Server) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !s.limiter.allow(ip) {
			writeError(w, http.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded. Maximum %d requests per minute.", s.limiter.max))
			return
		}
		next(w, r)
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sequence string `json:"sequence"`
	}
	if !decode(w, r, &req) {
		return
	}

	seq, errMsg := validateSequence(req.Sequence)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	writeJSON(w, http.StatusOK, Summarize(seq, s.conf))
}

func (s *Server) mutations(w http.ResponseWriter, r *http.Request) {
	seq1, seq2, ok := decodePair(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, FindMutations(Clean(seq1), Clean(seq2)))
}

func (s *Server) align(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sequence1 string `json:"sequence1"`
		Sequence2 string `json:"sequence2"`
		Algorithm string `json:"algorithm"`
	}
	if !decode(w, r, &req) {
		return
	}

	seq1, errMsg := validateSequence(req.Sequence1)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, "Sequence 1: "+errMsg)
		return
	}
	seq2, errMsg := validateSequence(req.Sequence2)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, "Sequence 2: "+errMsg)
		return
	}

	var alignment Alignment
	if req.Algorithm == "local" {
		alignment = SmithWaterman(Clean(seq1), Clean(seq2))
	} else {
		alignment = NeedlemanWunsch(Clean(seq1), Clean(seq2))
	}

	writeJSON(w, http.StatusOK, struct {
		Alignment
		Stats AlignmentStats `json:"stats"`
	}{alignment, alignment.Stats()})
}

func (s *Server) crispr(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sequence string `json:"sequence"`
		PAM      string `json:"pam"`
	}
	if !decode(w, r, &req) {
		return
	}

	seq, errMsg := validateSequence(req.Sequence)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	pam := req.PAM
	if pam == "" {
		pam = s.conf.CRISPR.PAM
	}

	writeJSON(w, http.StatusOK, FindPAMSites(Clean(seq), pam, s.conf.CRISPR.GuideLength))
}

func (s *Server) primers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sequence string `json:"sequence"`
	}
	if !decode(w, r, &req) {
		return
	}

	seq, errMsg := validateSequence(req.Sequence)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	result := DesignPrimers(
		Clean(seq),
		s.conf.Primers.Length,
		s.conf.Primers.ProductMin,
		s.conf.Primers.ProductMax,
		s.conf.Primers.PrimerConc,
		s.conf.Primers.SaltConc,
	)
	writeJSON(w, http.StatusOK, result)
}

// decodePair reads and validates the two-sequence request body shared
// by the mutations endpoint
func decodePair(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	var req struct {
		Sequence1 string `json:"sequence1"`
		Sequence2 string `json:"sequence2"`
	}
	if !decode(w, r, &req) {
		return "", "", false
	}

	seq1, errMsg := validateSequence(req.Sequence1)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, "Sequence 1: "+errMsg)
		return "", "", false
	}
	seq2, errMsg := validateSequence(req.Sequence2)
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, "Sequence 2: "+errMsg)
		return "", "", false
	}

	return seq1, seq2, true
}

// validateSequence uppercases the request text, strips whitespace and
// enforces the API's input contract: non-empty, at most 100 kb and
// only A/T/G/C/N characters. Returns the sanitized sequence or an
// error message
func validateSequence(raw string) (string, string) {
	seq := strings.ToUpper(raw)
	seq = strings.NewReplacer(" ", "", "\n", "", "\r", "", "\t", "").Replace(seq)

	if seq == "" {
		return "", "Sequence cannot be empty"
	}
	if len(seq) > maxSequenceLength {
		return "", "Sequence too long. Maximum 100,000 bp allowed."
	}

	invalid := map[byte]bool{}
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'T', 'G', 'C', 'N':
		default:
			invalid[seq[i]] = true
		}
	}
	if len(invalid) > 0 {
		chars := make([]string, 0, len(invalid))
		for b := range invalid {
			chars = append(chars, string(b))
		}
		sort.Strings(chars)
		return "", fmt.Sprintf("Invalid characters found: %s. Only A, T, G, C allowed.", strings.Join(chars, ", "))
	}

	return seq, ""
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "No JSON data provided")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		stderr.Printf("failed to write response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
