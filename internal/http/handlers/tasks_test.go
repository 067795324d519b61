package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"taskboard/internal/domain"
	"taskboard/internal/http/handlers"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestRouter() (*gin.Engine, *service.TaskService) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryTaskRepository()
	svc := service.NewTaskService(repo)
	h := handlers.NewHandler(svc)

	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.html")

	r.GET("/", h.ListPage)
	r.GET("/tasks/new", h.NewTaskPage)
	r.POST("/tasks", h.CreateTaskForm)
	r.GET("/tasks/:id/edit", h.EditTaskPage)
	r.POST("/tasks/:id", h.EditTaskForm)
	r.POST("/tasks/:id/toggle", h.ToggleTaskForm)
	r.GET("/tasks/:id/delete", h.DeleteTaskPage)
	r.POST("/tasks/:id/delete", h.DeleteTaskForm)

	api := r.Group("/api/v1")
	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.ReplaceTask)
	api.PATCH("/tasks/:id", h.PatchTask)
	api.PATCH("/tasks/:id/toggle", h.ToggleTask)
	api.DELETE("/tasks/:id", h.DeleteTask)

	return r, svc
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListPageEmpty(t *testing.T) {
	r, _ := newTestRouter()
	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No tasks yet") {
		t.Fatalf("expected empty-state message, body: %s", w.Body.String())
	}
}

func TestCreateFormRedirectsAndFlashes(t *testing.T) {
	r, svc := newTestRouter()

	w := postForm(r, "/tasks", url.Values{
		"title":       {"Water the plants"},
		"description": {"Back garden too"},
		"due_date":    {"2024-04-01"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "flash=") {
		t.Fatal("expected flash cookie on success")
	}

	tasks, err := svc.List(context.Background())
	if err != nil || len(tasks) != 1 {
		t.Fatalf("expected one stored task, got %d (%v)", len(tasks), err)
	}
	if tasks[0].Title != "Water the plants" || tasks[0].DueDateString() != "2024-04-01" {
		t.Fatalf("stored task mismatch: %+v", tasks[0])
	}
}

func TestCreateFormInvalidTitleRerenders(t *testing.T) {
	r, svc := newTestRouter()

	w := postForm(r, "/tasks", url.Values{"title": {"   "}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected form re-render with 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Title is required.") {
		t.Fatal("expected title error in rendered form")
	}

	tasks, _ := svc.List(context.Background())
	if len(tasks) != 0 {
		t.Fatalf("invalid create must persist nothing, got %d tasks", len(tasks))
	}
}

func TestCreateFormInvalidDateRerenders(t *testing.T) {
	r, _ := newTestRouter()

	w := postForm(r, "/tasks", url.Values{"title": {"ok"}, "due_date": {"not-a-date"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Enter a valid date") {
		t.Fatal("expected due date error in rendered form")
	}
}

func TestEditFormUpdatesTask(t *testing.T) {
	r, svc := newTestRouter()
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.TaskInput{Title: "Before", DueDate: "2024-04-01"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := get(r, "/tasks/1/edit")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Before") {
		t.Fatalf("edit page should pre-fill, code %d", w.Code)
	}

	w = postForm(r, "/tasks/1", url.Values{"title": {"After"}, "due_date": {"2024-04-02"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "After" || got.DueDateString() != "2024-04-02" {
		t.Fatalf("edit did not apply: %+v", got)
	}
}

func TestTogglePageFlow(t *testing.T) {
	r, svc := newTestRouter()
	ctx := context.Background()

	created, _ := svc.Create(ctx, domain.TaskInput{Title: "Flip"})

	w := postForm(r, "/tasks/1/toggle", url.Values{})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	got, _ := svc.Get(ctx, created.ID)
	if !got.IsResolved {
		t.Fatal("toggle did not resolve the task")
	}
}

func TestDeleteConfirmThenDelete(t *testing.T) {
	r, svc := newTestRouter()
	ctx := context.Background()

	created, _ := svc.Create(ctx, domain.TaskInput{Title: "Doomed"})

	w := get(r, "/tasks/1/delete")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Doomed") {
		t.Fatalf("confirmation page should name the task, code %d", w.Code)
	}

	w = postForm(r, "/tasks/1/delete", url.Values{})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if _, err := svc.Get(ctx, created.ID); err == nil {
		t.Fatal("task should be gone after delete")
	}
}

func TestPagesMissingIDReturn404(t *testing.T) {
	r, _ := newTestRouter()

	for _, req := range []struct{ method, path string }{
		{"GET", "/tasks/999/edit"},
		{"POST", "/tasks/999"},
		{"POST", "/tasks/999/toggle"},
		{"GET", "/tasks/999/delete"},
		{"POST", "/tasks/999/delete"},
		{"GET", "/tasks/abc/edit"},
	} {
		var w *httptest.ResponseRecorder
		if req.method == "GET" {
			w = get(r, req.path)
		} else {
			w = postForm(r, req.path, url.Values{"title": {"x"}})
		}
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", req.method, req.path, w.Code)
		}
	}
}

func TestListPageOrdering(t *testing.T) {
	r, svc := newTestRouter()
	ctx := context.Background()

	svc.Create(ctx, domain.TaskInput{Title: "later", DueDate: "2024-01-05"})
	svc.Create(ctx, domain.TaskInput{Title: "sooner", DueDate: "2024-01-01"})
	svc.Create(ctx, domain.TaskInput{Title: "undated"})

	w := get(r, "/")
	body := w.Body.String()
	iSooner := strings.Index(body, "sooner")
	iLater := strings.Index(body, "later")
	iUndated := strings.Index(body, "undated")
	if iSooner == -1 || iLater == -1 || iUndated == -1 {
		t.Fatal("all tasks should render")
	}
	if !(iSooner < iLater && iLater < iUndated) {
		t.Fatalf("wrong render order: sooner=%d later=%d undated=%d", iSooner, iLater, iUndated)
	}
}
