// Package checkoutv1 содержит gRPC API оформления заказов.
//
// Генераторы устанавливаются вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.6.0
package checkoutv1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative ../../checkout/v1/checkout_service.proto
