package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/ClosetBot_Go/internal/domain"
	"github.com/osse101/ClosetBot_Go/internal/logger"
	"github.com/osse101/ClosetBot_Go/internal/metrics"
)

func (d *Dispatcher) handleStart(context.Context, string) (string, string) {
	return HelpText, metrics.OutcomeOK
}

func (d *Dispatcher) handleAdd(ctx context.Context, name string) (string, string) {
	if _, err := d.svc.AddItem(ctx, name); err != nil {
		return d.failure(ctx, KindAdd, name, err, MsgErrAdding)
	}
	return fmt.Sprintf(MsgAdded, name), metrics.OutcomeOK
}

func (d *Dispatcher) handleMove(ctx context.Context, name string) (string, string) {
	item, err := d.svc.MoveItem(ctx, name)
	if err != nil {
		return d.failure(ctx, KindMove, name, err, MsgErrMoving)
	}
	return fmt.Sprintf(MsgMoved, name, item.Location.Label()), metrics.OutcomeOK
}

func (d *Dispatcher) handleDelete(ctx context.Context, name string) (string, string) {
	if err := d.svc.DeleteItem(ctx, name); err != nil {
		return d.failure(ctx, KindDelete, name, err, MsgErrDeleting)
	}
	return fmt.Sprintf(MsgDeleted, name), metrics.OutcomeOK
}

func (d *Dispatcher) handleList(ctx context.Context, _ string) (string, string) {
	items, err := d.svc.ListItems(ctx)
	if err != nil {
		return d.failure(ctx, KindList, "", err, MsgErrRetrieving)
	}
	if len(items) == 0 {
		return MsgListEmpty, metrics.OutcomeOK
	}

	var sb strings.Builder
	sb.WriteString(MsgListHeader)
	for _, item := range items {
		fmt.Fprintf(&sb, MsgListLine, item.Name, item.Location.Label(), d.formatDate(item.LastMoved))
	}
	return sb.String(), metrics.OutcomeOK
}

func (d *Dispatcher) handleListMyHouse(ctx context.Context, _ string) (string, string) {
	return d.listAt(ctx, KindListMyHouse, domain.LocationMyHouse, MsgMyHouseTitle)
}

func (d *Dispatcher) handleListGFHouse(ctx context.Context, _ string) (string, string) {
	return d.listAt(ctx, KindListGFHouse, domain.LocationGirlfriendHouse, MsgGirlfriendHouseTitle)
}

func (d *Dispatcher) listAt(ctx context.Context, kind Kind, location domain.Location, title string) (string, string) {
	items, err := d.svc.ListItemsAt(ctx, location)
	if err != nil {
		return d.failure(ctx, kind, "", err, MsgErrRetrieving)
	}
	if len(items) == 0 {
		return fmt.Sprintf(MsgLocationEmpty, title), metrics.OutcomeOK
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, MsgLocationHeader, title)
	for _, item := range items {
		fmt.Fprintf(&sb, MsgLocationLine, item.Name, d.formatDate(item.LastMoved))
	}
	return sb.String(), metrics.OutcomeOK
}

// failure maps a service error onto the reply the user sees
func (d *Dispatcher) failure(ctx context.Context, kind Kind, name string, err error, generic string) (string, string) {
	switch {
	case errors.Is(err, domain.ErrMissingItemName):
		return fmt.Sprintf(MsgUsage, kind), metrics.OutcomeUsage
	case errors.Is(err, domain.ErrItemNotFound):
		return fmt.Sprintf(MsgNotFound, name), metrics.OutcomeNotFound
	default:
		logger.FromContext(ctx).Error("Command failed", "command", kind, "item", name, "error", err)
		return generic, metrics.OutcomeStoreError
	}
}

func (d *Dispatcher) formatDate(t time.Time) string {
	return t.In(d.loc).Format(DateLayout)
}
