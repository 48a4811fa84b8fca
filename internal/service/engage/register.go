package engage

import (
	"google.golang.org/grpc"

	"github.com/kindledapp/kindled/internal/app"
	pb "github.com/kindledapp/kindled/internal/proto/engage"
)

// Registrar ties the Engage service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Engage service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Engage service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewEngageService(r.appCtx)
	pb.RegisterEngageServiceServer(s, service)
}
