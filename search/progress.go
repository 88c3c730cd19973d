package search

import "github.com/sirupsen/logrus"

// LogProgress returns a ProgressFunc that writes a debug entry to logger
// every `every` dequeues. Values of every below 1 log each dequeue.
func LogProgress(logger logrus.FieldLogger, every int) ProgressFunc {
	if every < 1 {
		every = 1
	}
	processed := 0
	return func(p Progress) {
		processed++
		if processed%every != 0 {
			return
		}
		logger.WithFields(logrus.Fields{
			"depth":     p.Depth,
			"frontier":  p.Frontier,
			"visited":   p.Visited,
			"processed": processed,
		}).Debug("search progress")
	}
}
