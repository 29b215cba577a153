package slack

import (
	"errors"
	"sort"
	"sync"
	"testing"
)

func TestSendMessageToIDPayload(t *testing.T) {
	s := newSender()
	for range 6 {
		s.GetMsgUID()
	}

	n, err := s.SendMessageToID("C1", "hi")
	if err != nil {
		t.Fatalf("SendMessageToID() error = %v", err)
	}
	if n != 7 {
		t.Errorf("envelope id = %d, want 7", n)
	}

	select {
	case m := <-s.tx:
		if m.kind != textEnvelope {
			t.Errorf("envelope kind = %d, want text", m.kind)
		}
		want := `{"id": 7,"type": "message", "channel": "C1","text": "hi"}`
		if got := string(m.payload); got != want {
			t.Errorf("payload = %s, want %s", got, want)
		}
	default:
		t.Fatal("no envelope queued")
	}
}

func TestSendMessageToIDEscapesText(t *testing.T) {
	s := newSender()

	if _, err := s.SendMessageToID("C1", `say "when"`); err != nil {
		t.Fatalf("SendMessageToID() error = %v", err)
	}

	m := <-s.tx
	want := `{"id": 1,"type": "message", "channel": "C1","text": "say \"when\""}`
	if got := string(m.payload); got != want {
		t.Errorf("payload = %s, want %s", got, want)
	}
}

func TestSendTypingToIDPayload(t *testing.T) {
	s := newSender()

	n, err := s.SendTypingToID("D1")
	if err != nil {
		t.Fatalf("SendTypingToID() error = %v", err)
	}
	if n != 1 {
		t.Errorf("envelope id = %d, want 1", n)
	}

	m := <-s.tx
	want := `{"id": 1,"type": "typing", "channel": "D1"}`
	if got := string(m.payload); got != want {
		t.Errorf("payload = %s, want %s", got, want)
	}
}

func TestGetMsgUIDConcurrent(t *testing.T) {
	s := newSender()

	const goroutines = 8
	const perGoroutine = 100

	ids := make(chan int64, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				ids <- s.GetMsgUID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	got := make([]int64, 0, goroutines*perGoroutine)
	for id := range ids {
		got = append(got, id)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })

	for i, id := range got {
		if id != int64(i+1) {
			t.Fatalf("ids are not unique and contiguous: got[%d] = %d", i, id)
		}
	}
}

func TestSendAfterShutdown(t *testing.T) {
	s := newSender()
	s.shutdown()

	err := s.Send(`{"id": 1,"type": "typing", "channel": "C1"}`)
	if err == nil {
		t.Fatal("Send() error = nil, want error")
	}

	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if serr.Kind != ErrInternal {
		t.Errorf("error kind = %v, want %v", serr.Kind, ErrInternal)
	}
}

func TestSendQueueFull(t *testing.T) {
	s := newSender()
	for range outboundQueueSize {
		if err := s.Send("{}"); err != nil {
			t.Fatalf("Send() error = %v before the queue filled", err)
		}
	}

	err := s.Send("{}")
	if err == nil {
		t.Fatal("Send() error = nil, want error on a full queue")
	}
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if serr.Kind != ErrInternal {
		t.Errorf("error kind = %v, want %v", serr.Kind, ErrInternal)
	}
}

func TestEnqueuePongDropsWhenFull(t *testing.T) {
	s := newSender()
	for range outboundQueueSize {
		s.enqueuePong(nil)
	}

	// Must not block.
	s.enqueuePong([]byte("ping payload"))
}
