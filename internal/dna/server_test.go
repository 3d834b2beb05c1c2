package dna

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func Test_Server_health(t *testing.T) {
	handler := NewServer(testConfig()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/health = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("GET /api/health = %v, want status healthy", body)
	}
}

func Test_Server_analyze(t *testing.T) {
	handler := NewServer(testConfig()).Handler()

	w := postJSON(t, handler, "/api/analyze", `{"sequence": "atg aaa taa"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/analyze = %d: %s", w.Code, w.Body.String())
	}

	var s Summary
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatal(err)
	}
	if s.Seq != "ATGAAATAA" || s.Length != 9 {
		t.Errorf("POST /api/analyze seq = %q (%d), want the cleaned ATGAAATAA", s.Seq, s.Length)
	}
}

func Test_Server_analyze_rejects(t *testing.T) {
	type args struct {
		body string
	}
	tests := []struct {
		name     string
		args     args
		wantCode int
		wantErr  string
	}{
		{
			"invalid characters, sorted in the message",
			args{`{"sequence": "ATGXQ"}`},
			http.StatusBadRequest,
			"Invalid characters found: Q, X.",
		},
		{
			"empty sequence",
			args{`{"sequence": "   "}`},
			http.StatusBadRequest,
			"Sequence cannot be empty",
		},
		{
			"no JSON body",
			args{``},
			http.StatusBadRequest,
			"No JSON data provided",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewServer(testConfig()).Handler()
			w := postJSON(t, handler, "/api/analyze", tt.args.body)

			if w.Code != tt.wantCode {
				t.Fatalf("POST /api/analyze = %d, want %d", w.Code, tt.wantCode)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(body["error"], tt.wantErr) {
				t.Errorf("POST /api/analyze error = %q, want %q", body["error"], tt.wantErr)
			}
		})
	}
}

func Test_Server_analyze_requires_post(t *testing.T) {
	handler := NewServer(testConfig()).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/analyze = %d, want 405", w.Code)
	}
}

func Test_Server_align(t *testing.T) {
	handler := NewServer(testConfig()).Handler()

	w := postJSON(t, handler, "/api/align",
		`{"sequence1": "TTTACGTTT", "sequence2": "GGGACGGGG", "algorithm": "local"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/align = %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Alignment
		Stats AlignmentStats `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Score != 6 || body.Seq1 != "ACG" {
		t.Errorf("POST /api/align = %+v, want the local ACG alignment with score 6", body.Alignment)
	}
	if body.Stats.Matches != 3 || body.Stats.Similarity != 100 {
		t.Errorf("POST /api/align stats = %+v, want 3 matches at 100%%", body.Stats)
	}
}

func Test_Server_mutations(t *testing.T) {
	handler := NewServer(testConfig()).Handler()

	w := postJSON(t, handler, "/api/mutations",
		`{"sequence1": "ATGAAA", "sequence2": "ATGAAG"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/mutations = %d: %s", w.Code, w.Body.String())
	}

	var body MutationResult
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Summary.SNPs != 1 || body.Summary.Silent != 1 {
		t.Errorf("POST /api/mutations = %+v, want one silent SNP", body.Summary)
	}
}

func Test_Server_crispr(t *testing.T) {
	handler := NewServer(testConfig()).Handler()

	w := postJSON(t, handler, "/api/crispr", `{"sequence": "AAGGTT"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/crispr = %d: %s", w.Code, w.Body.String())
	}

	var body PAMResult
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Total != 1 || body.Forward != 1 {
		t.Errorf("POST /api/crispr = %+v, want the one forward NGG site", body)
	}
}

func Test_Server_rate_limit(t *testing.T) {
	conf := testConfig()
	conf.Server.RateLimit = 2
	handler := NewServer(conf).Handler()

	for i := 0; i < 2; i++ {
		if w := postJSON(t, handler, "/api/analyze", `{"sequence": "ATGC"}`); w.Code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i+1, w.Code)
		}
	}

	w := postJSON(t, handler, "/api/analyze", `{"sequence": "ATGC"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("request 3 = %d, want 429", w.Code)
	}

	// the health check is exempt
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/health under rate limit = %d, want 200", rec.Code)
	}
}

func Test_validateSequence(t *testing.T) {
	type args struct {
		raw string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{"uppercases and strips whitespace", args{"atg c\n\tta"}, "ATGCTA", false},
		{"N is allowed", args{"ATGCN"}, "ATGCN", false},
		{"empty", args{""}, "", true},
		{"whitespace only", args{" \n\t"}, "", true},
		{"invalid characters", args{"ATG-C"}, "", true},
		{"too long", args{strings.Repeat("A", maxSequenceLength+1)}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := validateSequence(tt.args.raw)
			if (errMsg != "") != tt.wantErr {
				t.Fatalf("validateSequence() error = %q, wantErr %v", errMsg, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("validateSequence() = %v, want %v", got, tt.want)
			}
		})
	}
}
