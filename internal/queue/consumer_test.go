package queue_test

import (
	"github.com/redis/go-redis/v9"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"atlasorg.app/console/internal/queue"
)

var _ = Describe("ParseMessage", func() {
	It("parses a complete deletion message", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID: "1700000000000-0",
			Values: map[string]any{
				"task_type":       "organization_delete",
				"organization_id": "42",
				"attempt":         "2",
				"trace_id":        "4bf92f3577b34da6a3ce929d0e0e4736",
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1700000000000-0"))
		Expect(msg.TaskType).To(Equal(queue.TaskTypeOrganizationDelete))
		Expect(msg.OrganizationID).To(Equal(int64(42)))
		Expect(msg.Attempt).To(Equal(2))
		Expect(msg.TraceID).To(Equal("4bf92f3577b34da6a3ce929d0e0e4736"))
	})

	It("defaults attempt to 1 when absent", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID: "1-0",
			Values: map[string]any{
				"task_type":       "organization_delete",
				"organization_id": "42",
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Attempt).To(Equal(1))
		Expect(msg.TraceID).To(BeEmpty())
	})

	It("rejects a message without a task type", func() {
		_, err := queue.ParseMessage(redis.XMessage{
			ID:     "1-0",
			Values: map[string]any{"organization_id": "42"},
		})

		Expect(err).To(MatchError(ContainSubstring("missing task_type")))
	})

	It("rejects an unknown task type", func() {
		_, err := queue.ParseMessage(redis.XMessage{
			ID: "1-0",
			Values: map[string]any{
				"task_type":       "project_delete",
				"organization_id": "42",
			},
		})

		Expect(err).To(MatchError(ContainSubstring("unknown task_type")))
	})

	It("rejects a message without an organization id", func() {
		_, err := queue.ParseMessage(redis.XMessage{
			ID:     "1-0",
			Values: map[string]any{"task_type": "organization_delete"},
		})

		Expect(err).To(MatchError(ContainSubstring("missing organization_id")))
	})

	It("rejects a non-numeric organization id", func() {
		_, err := queue.ParseMessage(redis.XMessage{
			ID: "1-0",
			Values: map[string]any{
				"task_type":       "organization_delete",
				"organization_id": "not-a-number",
			},
		})

		Expect(err).To(MatchError(ContainSubstring("parsing organization_id")))
	})
})
