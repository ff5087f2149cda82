package cupi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListScheduleRefs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vmrest/schedules" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"@total": "2", "Schedule": [
			{"ObjectId": "sched-1", "DisplayName": "All Hours"},
			{"ObjectId": "sched-2", "DisplayName": "Weekdays"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	refs, err := client.ListScheduleRefs(context.Background())
	if err != nil {
		t.Fatalf("ListScheduleRefs failed: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("Expected 2 refs, got %d", len(refs))
	}
	if refs[0].Name != "All Hours" || refs[0].ObjectID != "sched-1" {
		t.Errorf("Unexpected first ref: %+v", refs[0])
	}
}

func TestListSchedulesSingleResult(t *testing.T) {
	// A collection with one member comes back as a bare object
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"@total": "1", "Schedule": {"ObjectId": "sched-1", "DisplayName": "All Hours"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	schedules, err := client.ListSchedules(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListSchedules failed: %v", err)
	}
	if len(schedules) != 1 {
		t.Fatalf("Expected 1 schedule, got %d", len(schedules))
	}
	if schedules[0].DisplayName != "All Hours" {
		t.Errorf("Expected DisplayName 'All Hours', got '%s'", schedules[0].DisplayName)
	}
}

func TestListSchedulesPaging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("rowsPerPage") != "25" || query.Get("pageNumber") != "3" {
			t.Errorf("Unexpected query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"@total": "0"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.ListSchedules(context.Background(), &ListOptions{PageNumber: 3, RowsPerPage: 25})
	if err != nil {
		t.Fatalf("ListSchedules failed: %v", err)
	}
}

func TestAddSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/vmrest/schedulesets" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Failed to decode body: %v", err)
		}
		if body["DisplayName"] != "Weekdays" {
			t.Errorf("Expected DisplayName 'Weekdays', got '%s'", body["DisplayName"])
		}
		if body["OwnerLocationObjectId"] != "loc-1" {
			t.Errorf("Expected OwnerLocationObjectId 'loc-1', got '%s'", body["OwnerLocationObjectId"])
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`/vmrest/schedulesets/89443b75-0547-4008-8245-39c3abeaed31`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	oid, err := client.AddSchedule(context.Background(), "Weekdays", "loc-1")
	if err != nil {
		t.Fatalf("AddSchedule failed: %v", err)
	}
	if oid != "89443b75-0547-4008-8245-39c3abeaed31" {
		t.Errorf("Unexpected ObjectId: %s", oid)
	}
}

func TestUpdateSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" || r.URL.Path != "/vmrest/schedules/sched-1" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.UpdateSchedule(context.Background(), "sched-1", "After Hours"); err != nil {
		t.Fatalf("UpdateSchedule failed: %v", err)
	}
}

func TestDeleteScheduleSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" || r.URL.Path != "/vmrest/schedulesets/set-1" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.DeleteScheduleSet(context.Background(), "set-1"); err != nil {
		t.Fatalf("DeleteScheduleSet failed: %v", err)
	}
}
