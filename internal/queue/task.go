package queue

type TaskType string

const (
	TaskTypeOrganizationDelete TaskType = "organization_delete"
)
