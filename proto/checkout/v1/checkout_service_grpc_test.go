package checkoutv1

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

type fakeClientConn struct {
	invoke func(context.Context, string, any, any, ...grpc.CallOption) error
}

func (f *fakeClientConn) Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error {
	if f.invoke == nil {
		return errors.New("unexpected Invoke call")
	}
	return f.invoke(ctx, method, args, reply, opts...)
}

func (f *fakeClientConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

func TestCheckoutServiceClient_InvokesEveryMethod(t *testing.T) {
	methods := map[string]int{}
	conn := &fakeClientConn{
		invoke: func(_ context.Context, method string, _ any, reply any, opts ...grpc.CallOption) error {
			methods[method]++

			var static bool
			for _, opt := range opts {
				if _, ok := opt.(grpc.ContentSubtypeCallOption); ok {
					t.Fatalf("%s: unexpected content subtype", method)
				}
				if _, ok := opt.(grpc.StaticMethodCallOption); ok {
					static = true
				}
			}
			require.True(t, static, method)

			if out, ok := reply.(*CheckoutResponse); ok {
				out.Order = &Order{Id: "order-1"}
			}
			return nil
		},
	}

	client := NewCheckoutServiceClient(conn)
	ctx := context.Background()

	resp, err := client.Checkout(ctx, &CheckoutRequest{})
	require.NoError(t, err)
	require.Equal(t, "order-1", resp.GetOrder().GetId())

	_, err = client.ListProducts(ctx, &ListProductsRequest{})
	require.NoError(t, err)
	_, err = client.PlanAllocation(ctx, &PlanAllocationRequest{ProductName: "Milk", Qty: 4})
	require.NoError(t, err)
	_, err = client.GetCart(ctx, &GetCartRequest{})
	require.NoError(t, err)
	_, err = client.AddCartItem(ctx, &AddCartItemRequest{})
	require.NoError(t, err)
	_, err = client.UpdateCartItem(ctx, &UpdateCartItemRequest{})
	require.NoError(t, err)
	_, err = client.RemoveCartItem(ctx, &RemoveCartItemRequest{})
	require.NoError(t, err)
	_, err = client.ConfirmPayment(ctx, &ConfirmPaymentRequest{})
	require.NoError(t, err)
	_, err = client.RepeatOrder(ctx, &RepeatOrderRequest{})
	require.NoError(t, err)
	_, err = client.GetOrder(ctx, &GetOrderRequest{})
	require.NoError(t, err)
	_, err = client.ListOrders(ctx, &ListOrdersRequest{})
	require.NoError(t, err)
	_, err = client.GetInvoice(ctx, &GetInvoiceRequest{})
	require.NoError(t, err)

	require.Len(t, methods, len(CheckoutService_ServiceDesc.Methods))
	for _, desc := range CheckoutService_ServiceDesc.Methods {
		require.Equal(t, 1, methods["/"+CheckoutService_ServiceDesc.ServiceName+"/"+desc.MethodName], desc.MethodName)
	}
}

func TestCheckoutServiceClient_PropagatesErrors(t *testing.T) {
	conn := &fakeClientConn{
		invoke: func(context.Context, string, any, any, ...grpc.CallOption) error {
			return status.Error(codes.FailedPrecondition, "insufficient stock")
		},
	}

	resp, err := NewCheckoutServiceClient(conn).Checkout(context.Background(), &CheckoutRequest{})
	require.Nil(t, resp)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestUnimplementedServer(t *testing.T) {
	var srv UnimplementedCheckoutServiceServer
	_, err := srv.Checkout(context.Background(), &CheckoutRequest{})
	require.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestMessages_WireRoundTrip(t *testing.T) {
	in := &ConfirmPaymentResponse{
		Order: &Order{
			Id:           "order-1",
			PaymentState: "paid",
			Items: []*OrderItem{{
				ProductName: "Milk",
				Qty:         4,
				Price:       &Money{AmountMinor: 250, Amount: "2.50"},
			}},
			Total: &Money{AmountMinor: 1000, Amount: "10.00"},
		},
		AlreadyConfirmed: true,
	}

	data, err := proto.Marshal(in)
	require.NoError(t, err)
	var out ConfirmPaymentResponse
	require.NoError(t, proto.Unmarshal(data, &out))
	require.True(t, proto.Equal(in, &out))
	require.Equal(t, int64(250), out.GetOrder().GetItems()[0].GetPrice().GetAmountMinor())

	text, err := protojson.Marshal(in)
	require.NoError(t, err)
	var fromJSON ConfirmPaymentResponse
	require.NoError(t, protojson.Unmarshal(text, &fromJSON))
	require.True(t, proto.Equal(in, &fromJSON))
}

func TestDescriptor_Registered(t *testing.T) {
	desc, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(CheckoutService_ServiceDesc.ServiceName))
	require.NoError(t, err)

	service, ok := desc.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	require.Equal(t, len(CheckoutService_ServiceDesc.Methods), service.Methods().Len())
	for _, m := range CheckoutService_ServiceDesc.Methods {
		require.NotNil(t, service.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}

	file, err := protoregistry.GlobalFiles.FindFileByPath(CheckoutService_ServiceDesc.Metadata.(string))
	require.NoError(t, err)
	require.Equal(t, protoreflect.FullName("checkout.v1"), file.Package())

	msg, err := protoregistry.GlobalTypes.FindMessageByName("checkout.v1.CheckoutResponse")
	require.NoError(t, err)
	_, ok = msg.New().Interface().(*CheckoutResponse)
	require.True(t, ok)
}

func TestNilGetters(t *testing.T) {
	var order *Order
	require.Empty(t, order.GetId())
	require.Nil(t, order.GetTotal())

	var resp *CartResponse
	require.Nil(t, resp.GetCart().GetItems())
	var money *Money
	require.Zero(t, money.GetAmountMinor())
}
