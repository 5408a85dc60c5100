package worker

// Pool defaults
const (
	DefaultWorkers   = 2
	DefaultQueueSize = 16
)

// JobNameUsageSampler identifies the usage sampler in logs
const JobNameUsageSampler = "usage_sampler"

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgUsageSampled    = "Usage sampled"
)
