package jobscheduler

import (
	"legalconnect/modules/jobscheduler/service"

	"github.com/hibiken/asynq"
)

// Init wires the reminder queue producer and its worker. The caller owns the
// asynq client and inspector lifecycles.
func Init(client *asynq.Client, inspector *asynq.Inspector, redisOpt asynq.RedisClientOpt, notifier service.ReminderNotifier) (*service.JobSchedulerService, *service.ReminderWorker) {
	svc := service.NewJobSchedulerService(client, inspector)
	worker := service.NewReminderWorker(redisOpt, notifier)
	return svc, worker
}
