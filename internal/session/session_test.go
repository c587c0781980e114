package session

import (
	"fmt"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/sharebot0/sharebot/internal/artifact"
	"github.com/sharebot0/sharebot/internal/lang"
	"github.com/sharebot0/sharebot/internal/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStoreGetMissing(t *testing.T) {
	t.Parallel()

	s := NewStore(log.NewNop())
	if e, ok := s.Get("nobody"); ok {
		t.Errorf("Get on empty store = %+v, true, want false", e)
	}
}

func TestStorePutGet(t *testing.T) {
	t.Parallel()

	s := NewStore(log.NewNop())
	a := artifact.New(lang.PY, "print(1)")
	s.Put("u1", a)

	e, ok := s.Get("u1")
	if !ok {
		t.Fatal("Get after Put should find the entry")
	}
	if e.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", e.UserID)
	}
	if e.Artifact != a {
		t.Error("Artifact should be the stored pointer")
	}
	if e.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}
}

func TestStoreOverwrite(t *testing.T) {
	t.Parallel()

	s := NewStore(log.NewNop())
	s.Put("u1", artifact.New(lang.PY, "old"))
	second := artifact.New(lang.JS, "new")
	s.Put("u1", second)

	e, _ := s.Get("u1")
	if e.Artifact != second {
		t.Error("Put should replace the entry whole")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after overwriting the same user", s.Len())
	}
}

func TestStoreIsolatesUsers(t *testing.T) {
	t.Parallel()

	s := NewStore(log.NewNop())
	s.Put("u1", artifact.New(lang.PY, "a"))
	s.Put("u2", artifact.New(lang.JS, "b"))

	e1, _ := s.Get("u1")
	e2, _ := s.Get("u2")
	if e1.Artifact.Code != "a" || e2.Artifact.Code != "b" {
		t.Errorf("entries crossed users: u1=%q u2=%q", e1.Artifact.Code, e2.Artifact.Code)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := NewStore(log.NewNop())

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		userID := fmt.Sprintf("user-%d", i%10)
		go func() {
			defer wg.Done()
			s.Put(userID, artifact.New(lang.PY, "print(1)"))
		}()
		go func() {
			defer wg.Done()
			s.Get(userID)
		}()
	}
	wg.Wait()

	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10 distinct users", s.Len())
	}
}
