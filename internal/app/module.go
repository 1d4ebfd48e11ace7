package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/fitdesk/memberdesk/internal/app/api/server"
	"github.com/fitdesk/memberdesk/internal/app/service/catalog"
	"github.com/fitdesk/memberdesk/internal/app/service/customer"
	"github.com/fitdesk/memberdesk/internal/app/service/membership"
	"github.com/fitdesk/memberdesk/internal/app/service/statistics"
	"github.com/fitdesk/memberdesk/internal/platform/db"
	"github.com/fitdesk/memberdesk/pkg/config"
	"github.com/fitdesk/memberdesk/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	catalog.Module,
	membership.Module,
	customer.Module,
	statistics.Module,
)
