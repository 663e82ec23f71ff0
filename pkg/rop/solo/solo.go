package solo

import (
	"context"
	"errors"

	"github.com/ib-77/swiftbridge/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

// forward re-types a non-successful result, keeping cancel as cancel.
func forward[In, Out any](input rop.Result[In]) rop.Result[Out] {
	if input.IsCancel() {
		return rop.Cancel[Out](input.Err())
	}
	return rop.Fail[Out](input.Err())
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsFailure() {
		return input
	}
	if valid, errMsg := validate(ctx, input.Result()); !valid {
		return rop.Failure[T](errMsg)
	}
	return input
}

// ValidateAll runs every check against input and joins their errors.
// With breakOnError it stops at the first failing check.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	checks ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	var joined []error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {
			if current.IsFailure() {
				joined = append(joined, current.Err())
			}
			if len(joined) == 0 {
				return current
			}
			return rop.Fail[T](errors.Join(joined...))
		},
		// every check sees the original input, not the accumulated failure
		wrapChecks(input, checks)...,
	)
}

func wrapChecks[T any](input rop.Result[T],
	checks []func(ctx context.Context, in rop.Result[T]) rop.Result[T]) []func(ctx context.Context, in rop.Result[T]) rop.Result[T] {

	wrapped := make([]func(ctx context.Context, in rop.Result[T]) rop.Result[T], 0, len(checks))
	for _, check := range checks {
		wrapped = append(wrapped, func(ctx context.Context, _ rop.Result[T]) rop.Result[T] {
			return check(ctx, input)
		})
	}
	return wrapped
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return forward[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return forward[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		if onSuccess != nil {
			onSuccess(ctx, input.Result())
		}
	case input.IsCancel():
		if onCancel != nil {
			onCancel(ctx, input.Err())
		}
	default:
		if onError != nil {
			onError(ctx, input.Err())
		}
	}

	return input
}

// Try runs onTryExecute on success. A returned context error becomes a cancel.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsFailure() {
		return forward[In, Out](input)
	}
	out, err := onTryExecute(ctx, input.Result())
	return rop.Of(out, err)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

// Join feeds input through inputsF in order, passing each step's output to
// concat. A done ctx yields a Cancel, with breakOnError a failing step ends
// the run early.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if err := ctx.Err(); err != nil {
		return rop.Cancel[T](err)
	}
	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))
	if finalResult.IsFailure() && breakOnError {
		return finalResult
	}

	for _, in := range inputsF[1:] {
		if err := ctx.Err(); err != nil {
			return rop.Cancel[T](err)
		}

		finalResult = concat(ctx, in(ctx, finalResult))
		if finalResult.IsFailure() && breakOnError {
			return finalResult
		}
	}
	return finalResult
}
