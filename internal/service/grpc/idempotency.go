package grpcsvc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/lotcheckout/internal/domain"
)

const (
	idempotencyKeyHeader = "idempotency-key"
	idempotencyTTL       = 24 * time.Hour
)

// withIdempotency выполняет handler не более одного раза на idempotency-key.
//
// Успех и ошибки, которые зависят только от тела запроса, сохраняются и
// возвращаются при повторе с тем же ключом. Остальные ошибки (нехватка
// остатка, конфликт, недоступное хранилище, отмена) освобождают ключ: handler
// ничего не зафиксировал, и повтор с тем же ключом выполнит его заново.
func withIdempotency[T proto.Message](
	s *CheckoutService,
	ctx context.Context,
	method string,
	userID string,
	req proto.Message,
	newResp func() T,
	handler func(context.Context) (T, error),
) (T, error) {
	var zero T
	if s.idemRepo == nil {
		return handler(ctx)
	}

	idemKey, err := readIdempotencyKey(ctx)
	if err != nil {
		return zero, err
	}

	reqHash, err := buildIdempotencyRequestHash(method, userID, req)
	if err != nil {
		s.logger.WithError(err).WithField("method", method).Warn("failed to build idempotency request hash")
		return zero, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	record, err := s.idemRepo.CreateProcessing(ctx, idemKey, reqHash, time.Now().UTC().Add(idempotencyTTL))
	if err != nil {
		return replayIdempotency(s, err, record, newResp)
	}

	resp, runErr := handler(ctx)
	// Результат фиксируется даже после отмены запроса клиентом: коммит уже случился.
	storeCtx := context.WithoutCancel(ctx)
	if runErr != nil {
		if isReplayableFailure(runErr) {
			s.cacheIdempotencyFailure(storeCtx, idemKey, runErr)
		} else {
			s.releaseIdempotencyKey(storeCtx, idemKey, runErr)
		}
		return zero, runErr
	}

	if cacheErr := s.cacheIdempotencySuccess(storeCtx, idemKey, resp); cacheErr != nil {
		s.logger.WithError(cacheErr).WithField("idempotency_key", idemKey).Warn("failed to store idempotent success response")
	}

	return resp, nil
}

// isReplayableFailure отбирает ошибки, которые повтор того же запроса получил бы
// снова при любом состоянии склада и заказов.
func isReplayableFailure(err error) bool {
	return status.Code(err) == codes.InvalidArgument
}

func replayIdempotency[T proto.Message](
	s *CheckoutService,
	createErr error,
	record domain.IdempotencyRecord,
	newResp func() T,
) (T, error) {
	var zero T
	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return zero, status.Error(codes.AlreadyExists, "idempotency key is already used with different request payload")
	case errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		switch record.Status {
		case domain.IdempotencyStatusDone:
			if len(record.ResponseBody) == 0 {
				return zero, status.Error(codes.Internal, "idempotency cache is empty")
			}
			resp := newResp()
			if err := protojson.Unmarshal(record.ResponseBody, resp); err != nil {
				s.logger.WithError(err).WithField("idempotency_key", record.Key).Warn("failed to decode cached idempotency response")
				return zero, status.Error(codes.Internal, "failed to decode cached idempotency response")
			}
			return resp, nil
		case domain.IdempotencyStatusProcessing:
			return zero, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
		case domain.IdempotencyStatusFailed:
			return zero, decodeIdempotencyFailure(record)
		default:
			return zero, status.Error(codes.Internal, "unknown idempotency record status")
		}
	default:
		s.logger.WithError(createErr).Warn("failed to create idempotency record")
		return zero, status.Error(codes.Unavailable, "failed to initialize idempotency request")
	}
}

func (s *CheckoutService) cacheIdempotencySuccess(ctx context.Context, key string, resp proto.Message) error {
	data, err := protojson.Marshal(resp)
	if err != nil {
		return err
	}
	return s.idemRepo.MarkDone(ctx, key, data, int(codes.OK))
}

// cacheIdempotencyFailure сохраняет google.rpc.Status целиком, вместе с деталями.
func (s *CheckoutService) cacheIdempotencyFailure(ctx context.Context, key string, runErr error) {
	st := status.Convert(runErr)
	code := st.Code()

	payload, err := protojson.Marshal(st.Proto())
	if err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to encode idempotency failure payload")
		payload = nil
	}

	if err := s.idemRepo.MarkFailed(ctx, key, payload, int(code)); err != nil {
		s.logger.WithError(err).WithField("idempotency_key", key).Warn("failed to store idempotency failure response")
	}
}

func (s *CheckoutService) releaseIdempotencyKey(ctx context.Context, key string, runErr error) {
	entry := s.logger.WithField("idempotency_key", key).WithField("code", status.Code(runErr).String())
	if err := s.idemRepo.Release(ctx, key); err != nil {
		entry.WithError(err).Warn("failed to release idempotency key")
		return
	}
	entry.Debug("idempotency key released for retry")
}

func decodeIdempotencyFailure(record domain.IdempotencyRecord) error {
	if len(record.ResponseBody) > 0 {
		var cached spb.Status
		if err := protojson.Unmarshal(record.ResponseBody, &cached); err == nil && cached.GetCode() != int32(codes.OK) {
			return status.FromProto(&cached).Err()
		}
	}

	if record.StatusCode > 0 {
		if code, ok := grpcCodeFromInt(record.StatusCode); ok {
			return status.Error(code, "previous request with the same idempotency key failed")
		}
	}

	return status.Error(codes.Internal, "previous request with the same idempotency key failed")
}

func grpcCodeFromInt(value int) (codes.Code, bool) {
	if value < int(codes.OK) || value > int(codes.Unauthenticated) {
		return codes.Internal, false
	}
	return codes.Code(uint32(value)), true
}

func readIdempotencyKey(ctx context.Context) (string, error) {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			return strings.TrimSpace(values[0]), nil
		}
	}
	return "", status.Error(codes.InvalidArgument, "idempotency-key metadata is required")
}

// buildIdempotencyRequestHash привязывает ключ к методу, пользователю и телу запроса.
func buildIdempotencyRequestHash(method, userID string, req proto.Message) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request is nil")
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(req)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(method)+len(userID)+2+len(data))
	payload = append(payload, method...)
	payload = append(payload, ':')
	payload = append(payload, userID...)
	payload = append(payload, ':')
	payload = append(payload, data...)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
