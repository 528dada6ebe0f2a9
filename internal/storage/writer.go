// ABOUTME: Asynchronous write-through for store snapshots.
// ABOUTME: Failures are logged and published; in-memory state stays authoritative.
package storage

import (
	"github.com/sirupsen/logrus"
)

type writeJob struct {
	key   string
	value []byte
	flush chan struct{}
}

// Writer persists snapshots without blocking the caller. A single worker
// drains writes in issue order, so the snapshot stored for a key after
// Wait is always the last one written to it.
type Writer struct {
	blob Blob
	log  logrus.FieldLogger
	jobs chan writeJob
	errs chan error
}

// NewWriter wraps a Blob with fire-and-forget write-through.
func NewWriter(blob Blob, log logrus.FieldLogger) *Writer {
	w := &Writer{
		blob: blob,
		log:  log,
		jobs: make(chan writeJob, 64),
		errs: make(chan error, 16),
	}
	go w.run()
	return w
}

func (w *Writer) run() {
	for job := range w.jobs {
		if job.flush != nil {
			close(job.flush)
			continue
		}
		if err := w.blob.Put(job.key, job.value); err != nil {
			w.log.WithError(err).WithField("key", job.key).Warn("write-through failed")
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// Write hands a snapshot to the blob store in the background. A failed
// write is logged and published on Errors, never retried; the in-memory
// state that produced the snapshot is kept regardless.
func (w *Writer) Write(key string, value []byte) {
	w.jobs <- writeJob{key: key, value: value}
}

// Errors exposes write-through failures to callers that want to observe
// them. The channel is buffered; unconsumed errors are dropped.
func (w *Writer) Errors() <-chan error {
	return w.errs
}

// Wait blocks until every write issued before it has settled.
func (w *Writer) Wait() {
	flush := make(chan struct{})
	w.jobs <- writeJob{flush: flush}
	<-flush
}
