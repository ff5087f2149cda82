package cupi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vmrest/users" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"@total": "2", "User": [
			{"ObjectId": "user-1", "Alias": "operator", "DisplayName": "Operator"},
			{"ObjectId": "user-2", "Alias": "jdoe", "DisplayName": "J Doe", "DtmfAccessId": "2001"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	users, err := client.ListUsers(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	if users[1].DtmfAccessID != "2001" {
		t.Errorf("Expected DtmfAccessId '2001', got '%s'", users[1].DtmfAccessID)
	}
}

func TestGetUserCallHandlerObjectID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vmrest/users/user-1" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"ObjectId": "user-1", "Alias": "operator", "CallHandlerObjectId": "ch-42"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	oid, err := client.GetUserCallHandlerObjectID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetUserCallHandlerObjectID failed: %v", err)
	}
	if oid != "ch-42" {
		t.Errorf("Expected 'ch-42', got '%s'", oid)
	}
}

func TestListUserTemplatesSingleResult(t *testing.T) {
	// Out of the box there is one template, which CUPI inlines
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"@total": "1", "UserTemplate": {"ObjectId": "tmpl-1", "Alias": "voicemailusertemplate"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	refs, err := client.ListUserTemplates(context.Background())
	if err != nil {
		t.Fatalf("ListUserTemplates failed: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("Expected 1 template ref, got %d", len(refs))
	}
	if refs[0].Name != "voicemailusertemplate" || refs[0].ObjectID != "tmpl-1" {
		t.Errorf("Unexpected ref: %+v", refs[0])
	}
}

func TestAddUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/vmrest/users" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if tmpl := r.URL.Query().Get("templateAlias"); tmpl != "voicemailusertemplate" {
			t.Errorf("Expected templateAlias query param, got '%s'", tmpl)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`/vmrest/users/user-99`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	oid, err := client.AddUser(context.Background(), "jdoe", "2001", "voicemailusertemplate")
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	if oid != "user-99" {
		t.Errorf("Expected ObjectId 'user-99', got '%s'", oid)
	}
}

func TestDeleteUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" || r.URL.Path != "/vmrest/users/user-99" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if err := client.DeleteUser(context.Background(), "user-99"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
}
