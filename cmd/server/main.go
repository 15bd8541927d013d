package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/napolitain/solver-estate/internal/converter"
	"github.com/napolitain/solver-estate/internal/models"
	"github.com/napolitain/solver-estate/internal/rpc"
	"github.com/napolitain/solver-estate/internal/solver/profit"
)

var (
	port       = flag.Int("port", 0, "The server port (overrides config)")
	configFile = flag.String("config", "", "Path to YAML config file")
)

// server is used to implement the ProfitSolverService
type server struct {
	solver *profit.Solver
}

// Compute implements the Compute RPC
func (s *server) Compute(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	requestID := uuid.NewString()
	budget := converter.ProtoToBudget(req)
	log.Printf("[INFO] %s: Compute request, budget=%d", requestID, budget)

	allocation, err := s.solver.Solve(budget)
	if err != nil {
		log.Printf("[WARN] %s: rejected: %v", requestID, err)
		if errors.Is(err, profit.ErrNegativeBudget) || errors.Is(err, profit.ErrBudgetTooLarge) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	response, err := converter.AllocationToProto(allocation)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode allocation: %v", err)
	}

	log.Printf("[INFO] %s: earnings=%d theatre=%d pub=%d commercial_park=%d",
		requestID, allocation.Earnings, allocation.Counts.Theatre, allocation.Counts.Pub, allocation.Counts.CommercialPark)
	return response, nil
}

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := models.ResolveConfig(*configFile)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		log.Fatalf("[FATAL] Failed to listen: %v", err)
	}

	s := grpc.NewServer()
	rpc.RegisterProfitSolverServiceServer(s, &server{
		solver: profit.NewSolverWithConfig(cfg.Solver),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("[INFO] shutdown signal received, stopping...")
		s.GracefulStop()
	}()

	log.Printf("[INFO] gRPC server listening on port %d (max budget %d)", cfg.Server.Port, cfg.Solver.MaxBudget)
	if err := s.Serve(lis); err != nil {
		log.Fatalf("[FATAL] Failed to serve: %v", err)
	}
}
