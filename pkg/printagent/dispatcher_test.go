package printagent

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestDispatcherDeliversAfterEnqueue(t *testing.T) {
	var mu sync.Mutex
	var got []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.URL.Path)
		mu.Unlock()
	}))
	defer srv.Close()

	d := NewDispatcher(NewClient(time.Second), 8)
	d.Enqueue(Job{Type: JobKOT, URL: srv.URL + "/kot"})
	d.Enqueue(Job{Type: JobBill, URL: srv.URL + "/bill"})
	d.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("agent received %d jobs, want 2", len(got))
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// no worker draining: construct manually so the enqueue path can fill
	d := &Dispatcher{client: NewClient(time.Second), jobs: make(chan Job, 1)}

	d.Enqueue(Job{Type: JobKOT, URL: "http://unused"})
	d.Enqueue(Job{Type: JobBill, URL: "http://unused"})

	if len(d.jobs) != 1 {
		t.Errorf("queue holds %d jobs, want 1 with overflow dropped", len(d.jobs))
	}
}

func TestClientSwallowsAgentErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(time.Second)
	// must not panic or block on a failing agent
	c.Send(t.Context(), Job{Type: JobOpenDrawer, URL: srv.URL})
	c.Send(t.Context(), Job{Type: JobOpenDrawer, URL: ""})
}

func TestJobMarshalFlattensPayload(t *testing.T) {
	j := Job{
		Type:    JobKOT,
		Payload: map[string]interface{}{"ticket_no": 3, "station": "TANDOOR"},
	}
	b, err := j.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"type":"KOT"`, `"ticket_no":3`, `"station":"TANDOOR"`} {
		if !strings.Contains(s, want) {
			t.Errorf("marshaled job %s missing %s", s, want)
		}
	}
}
