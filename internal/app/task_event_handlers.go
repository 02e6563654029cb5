package app

import (
	"context"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/eventing"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/result"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/tasks"
	eventingInfra "github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/eventing"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/infrastructure/persistence"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/session"
)

// DuplicateTitleMessage is the failure message of the unique title rule.
const DuplicateTitleMessage = "a task with this title already exists"

// uniqueTaskTitleRule rejects a task whose title is used by another task of the tenant.
type uniqueTaskTitleRule struct {
	uows   *persistence.UnitOfWorkFactory
	logger logger.Logger
}

func (h *uniqueTaskTitleRule) check(ctx context.Context, task *tasks.Task) result.Result {
	uow, err := h.uows.New(ctx)
	if err != nil {
		h.logger.Error("Unique title rule failed: ", err)
		return result.Fail("could not verify the task title")
	}

	exists, err := persistence.NewGormTaskRepository(uow).ExistsByTitle(ctx, task.Title, task.ID)
	if err != nil {
		h.logger.Error("Unique title rule failed: ", err)
		return result.Fail("could not verify the task title")
	}
	if exists {
		return result.Fail(DuplicateTitleMessage, result.ValidationFailure{MemberName: "Title", Message: DuplicateTitleMessage})
	}
	return result.Ok()
}

// taskAuditHandler logs task lifecycle events.
type taskAuditHandler struct {
	logger logger.Logger
}

func (h *taskAuditHandler) created(ctx context.Context, e tasks.TaskCreated) error {
	h.logger.Info("Task ", e.Task.ID, " created by ", session.FromContext(ctx).UserName())
	return nil
}

func (h *taskAuditHandler) deleted(ctx context.Context, e tasks.TaskDeleted) error {
	h.logger.Info("Task ", e.TaskID, " deleted by ", session.FromContext(ctx).UserName())
	return nil
}

// RegisterTaskHandlers registers the business rules and domain handlers of tasks.
func RegisterTaskHandlers(registry *eventingInfra.Registry, uows *persistence.UnitOfWorkFactory, logger logger.Logger) {
	rule := &uniqueTaskTitleRule{uows: uows, logger: logger}
	audit := &taskAuditHandler{logger: logger}

	eventingInfra.RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[tasks.TaskCreating](
		func(ctx context.Context, e tasks.TaskCreating) result.Result {
			return rule.check(ctx, e.Task)
		}))
	eventingInfra.RegisterBusinessHandler(registry, eventing.BusinessEventHandlerFunc[tasks.TaskEditing](
		func(ctx context.Context, e tasks.TaskEditing) result.Result {
			return rule.check(ctx, e.Task)
		}))
	eventingInfra.RegisterDomainHandler(registry, eventing.DomainEventHandlerFunc[tasks.TaskCreated](audit.created))
	eventingInfra.RegisterDomainHandler(registry, eventing.DomainEventHandlerFunc[tasks.TaskDeleted](audit.deleted))
}
