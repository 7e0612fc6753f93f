package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

// Coalescer deduplicates identical GET requests. Concurrent requests for the
// same user and URI share a single upstream execution, and successful
// responses are reused for a short TTL. Responses behind Authenticate are
// role-scoped per user, so the caller's identity is part of the key; two
// users never share a cached response.
type Coalescer struct {
	cache *gocache.Cache

	mu       sync.Mutex
	inflight map[string]*inflightCall
}

type inflightCall struct {
	done        chan struct{}
	status      int
	contentType string
	body        []byte
}

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

func NewCoalescer(ttl time.Duration) *Coalescer {
	return &Coalescer{
		cache:    gocache.New(ttl, 2*ttl),
		inflight: make(map[string]*inflightCall),
	}
}

type bufferedWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Handle coalesces GET requests; everything else passes straight through.
func (co *Coalescer) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.Method + ":" + c.Request.URL.RequestURI()
		if claims := ClaimsFromContext(c); claims != nil {
			key = claims.UserID.String() + ":" + key
		}

		if v, ok := co.cache.Get(key); ok {
			resp := v.(cachedResponse)
			c.Data(resp.status, resp.contentType, resp.body)
			c.Abort()
			return
		}

		co.mu.Lock()
		if call, ok := co.inflight[key]; ok {
			co.mu.Unlock()
			<-call.done
			c.Data(call.status, call.contentType, call.body)
			c.Abort()
			return
		}
		call := &inflightCall{done: make(chan struct{})}
		co.inflight[key] = call
		co.mu.Unlock()

		w := &bufferedWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		// Waiters must be released even if the handler panics; the panic
		// continues up to the recovery middleware after the deferred cleanup.
		completed := false
		defer func() {
			if completed {
				call.status = w.Status()
				call.contentType = w.Header().Get("Content-Type")
				call.body = w.body.Bytes()

				if call.status < http.StatusBadRequest {
					co.cache.SetDefault(key, cachedResponse{
						status:      call.status,
						contentType: call.contentType,
						body:        call.body,
					})
				}
			} else {
				call.status = http.StatusInternalServerError
			}

			co.mu.Lock()
			delete(co.inflight, key)
			co.mu.Unlock()
			close(call.done)
		}()

		c.Next()
		completed = true
	}
}
