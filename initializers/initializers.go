package initializers

import (
	"context"

	"ats-backend/config"
	"ats-backend/db"
	"ats-backend/fiberlog"
	applicationhandler "ats-backend/lib/application"
	authhandler "ats-backend/lib/auth"
	xlsexport "ats-backend/lib/export/xls"
	hrusershandler "ats-backend/lib/hr-users"
	hruserstore "ats-backend/lib/hr-users/store"
	jobhandler "ats-backend/lib/job"
	"ats-backend/lib/notify"
	"ats-backend/middleware"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	InitS3(ctx)
	notify.NewHandler()
	xlsexport.NewHandler()
	authhandler.NewHandler()
	hrusershandler.NewHandler()
	jobhandler.NewHandler()
	applicationhandler.NewHandler()
	middleware.HRUserLoader = hruserstore.NewInstance(db.DB).GetByID
}
