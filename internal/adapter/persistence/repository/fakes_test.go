package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/redis/go-redis/v9"
)

type fakeDynamo struct {
	putIn       *dynamodb.PutItemInput
	getIn       *dynamodb.GetItemInput
	getIns      []*dynamodb.GetItemInput
	updateIn    *dynamodb.UpdateItemInput
	queryIns    []*dynamodb.QueryInput
	scanIns     []*dynamodb.ScanInput
	transactIns []*dynamodb.TransactWriteItemsInput

	putErr      error
	getItem     map[string]types.AttributeValue
	getByTable  map[string]map[string]types.AttributeValue
	updateOut   map[string]types.AttributeValue
	updateErr   error
	transactErr error
	pages       [][]map[string]types.AttributeValue
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	f.getIns = append(f.getIns, in)
	if f.getByTable != nil {
		return &dynamodb.GetItemOutput{Item: f.getByTable[aws.ToString(in.TableName)]}, nil
	}
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactIns = append(f.transactIns, in)
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

// Query and Scan serve f.pages in order, one page per call.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIns = append(f.queryIns, in)
	items, last := f.page(len(f.queryIns) - 1)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIns = append(f.scanIns, in)
	items, last := f.page(len(f.scanIns) - 1)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: last}, nil
}

func (f *fakeDynamo) page(i int) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	if i >= len(f.pages) {
		return nil, nil
	}
	var last map[string]types.AttributeValue
	if i < len(f.pages)-1 {
		last = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "cursor"}}
	}
	return f.pages[i], last
}

type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttl    time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

// EvalSha runs the compare-and-set fill script against the in-memory data.
func (f *fakeRedis) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	current, ok := f.data[keys[0]]
	if !ok {
		current = "0"
	}
	if current != fmt.Sprint(args[0]) {
		return redis.NewCmdResult(int64(0), nil)
	}
	ms, _ := strconv.ParseInt(fmt.Sprint(args[2]), 10, 64)
	f.data[keys[1]] = fmt.Sprint(args[1])
	f.ttl = time.Duration(ms) * time.Millisecond
	return redis.NewCmdResult(int64(1), nil)
}
