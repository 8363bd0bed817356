package weaviate

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func TestBatch_AddObjects(t *testing.T) {
	var got struct {
		Objects []Object `json:"objects"`
	}
	client := newTestClient(t, func(r chi.Router) {
		r.Post("/v1/batch/objects", func(w http.ResponseWriter, r *http.Request) {
			decodeBody(t, r, &got)
			out := []map[string]any{
				{
					"class":      got.Objects[0].Class,
					"properties": got.Objects[0].Properties,
					"result":     map[string]string{"status": "SUCCESS"},
				},
				{
					"class": got.Objects[1].Class,
					"result": map[string]any{
						"status": "FAILED",
						"errors": map[string]any{
							"error": []map[string]string{{"message": "invalid text property"}},
						},
					},
				},
			}
			writeJSON(t, w, http.StatusOK, out)
		})
	})

	objects := []Object{
		{Class: "Article", Properties: map[string]any{"title": "one"}},
		{Class: "Article", Properties: map[string]any{"title": 42}},
	}
	res, err := client.Batch().AddObjects(context.Background(), objects, "")
	if err != nil {
		t.Fatalf("AddObjects() error: %v", err)
	}
	if len(got.Objects) != 2 {
		t.Fatalf("posted %d objects, want 2", len(got.Objects))
	}
	if len(res) != 2 {
		t.Fatalf("len(res) = %d, want 2", len(res))
	}
	if res[0].Result.Status != BatchStatusSuccess {
		t.Errorf("res[0].Status = %q, want %q", res[0].Result.Status, BatchStatusSuccess)
	}
	if res[1].Result.Status != BatchStatusFailed {
		t.Errorf("res[1].Status = %q, want %q", res[1].Result.Status, BatchStatusFailed)
	}
	if res[1].Result.Errors == nil || len(res[1].Result.Errors.Error) != 1 {
		t.Fatalf("res[1].Errors = %+v, want one message", res[1].Result.Errors)
	}
	if msg := res[1].Result.Errors.Error[0].Message; msg != "invalid text property" {
		t.Errorf("error message = %q, want the server message", msg)
	}
}

func TestNewBatchReference(t *testing.T) {
	from := uuid.MustParse("36ddd591-2dee-4e7e-a3cc-eb86d30a4303")
	to := uuid.MustParse("df2b6598-046b-4b08-8b3e-9a145dbba559")

	ref := NewBatchReference("Article", from, "ofAuthor", "Author", to)
	wantFrom := "weaviate://localhost/Article/36ddd591-2dee-4e7e-a3cc-eb86d30a4303/ofAuthor"
	wantTo := "weaviate://localhost/Author/df2b6598-046b-4b08-8b3e-9a145dbba559"
	if ref.From != wantFrom {
		t.Errorf("From = %q, want %q", ref.From, wantFrom)
	}
	if ref.To != wantTo {
		t.Errorf("To = %q, want %q", ref.To, wantTo)
	}
}

func TestBatch_AddReferences(t *testing.T) {
	from := uuid.MustParse("36ddd591-2dee-4e7e-a3cc-eb86d30a4303")
	to := uuid.MustParse("df2b6598-046b-4b08-8b3e-9a145dbba559")
	var got []BatchReference
	var gotCL string
	client := newTestClient(t, func(r chi.Router) {
		r.Post("/v1/batch/references", func(w http.ResponseWriter, r *http.Request) {
			gotCL = r.URL.Query().Get("consistency_level")
			decodeBody(t, r, &got)
			writeJSON(t, w, http.StatusOK, []map[string]any{
				{"result": map[string]string{"status": "SUCCESS"}},
			})
		})
	})

	refs := []BatchReference{NewBatchReference("Article", from, "ofAuthor", "Author", to)}
	res, err := client.Batch().AddReferences(context.Background(), refs, ConsistencyAll)
	if err != nil {
		t.Fatalf("AddReferences() error: %v", err)
	}
	if gotCL != "ALL" {
		t.Errorf("consistency_level = %q, want %q", gotCL, "ALL")
	}
	if len(got) != 1 || got[0].From != refs[0].From {
		t.Errorf("posted refs = %+v, want %+v", got, refs)
	}
	if len(res) != 1 || res[0].Result.Status != BatchStatusSuccess {
		t.Errorf("res = %+v, want one SUCCESS", res)
	}
}

func TestBatch_DeleteObjectsDryRun(t *testing.T) {
	matched := uuid.MustParse("36ddd591-2dee-4e7e-a3cc-eb86d30a4303")
	var got BatchDeleteRequest
	client := newTestClient(t, func(r chi.Router) {
		r.Delete("/v1/batch/objects", func(w http.ResponseWriter, r *http.Request) {
			decodeBody(t, r, &got)
			writeJSON(t, w, http.StatusOK, BatchDeleteResponse{
				Match:  got.Match,
				Output: got.Output,
				DryRun: got.DryRun,
				Results: BatchDeleteResults{
					Matches: 1,
					Objects: []BatchDeleteObject{{ID: matched, Status: BatchStatusDryRun}},
				},
			})
		})
	})

	req := &BatchDeleteRequest{
		Match: BatchDeleteMatch{
			Class: "Article",
			Where: json.RawMessage(`{"operator":"Equal","path":["status"],"valueText":"stale"}`),
		},
		Output: BatchOutputVerbose,
		DryRun: true,
	}
	res, err := client.Batch().DeleteObjects(context.Background(), req, "")
	if err != nil {
		t.Fatalf("DeleteObjects() error: %v", err)
	}
	if got.Match.Class != "Article" || !got.DryRun {
		t.Errorf("posted request = %+v, want Article dry run", got)
	}
	if res.Results.Matches != 1 {
		t.Errorf("Matches = %d, want 1", res.Results.Matches)
	}
	if len(res.Results.Objects) != 1 || res.Results.Objects[0].Status != BatchStatusDryRun {
		t.Errorf("Objects = %+v, want one DRYRUN entry", res.Results.Objects)
	}
	if res.Results.Objects[0].ID != matched {
		t.Errorf("Objects[0].ID = %s, want %s", res.Results.Objects[0].ID, matched)
	}
}
