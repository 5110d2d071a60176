package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
	"github.com/diillson/aws-default-vpc-remover/internal/domain/repository"
)

// ErrRegionRequired is returned when a region-scoped client is requested without a region.
var ErrRegionRequired = errors.New("a region is required for region-scoped EC2 calls")

// AWSRepositoryImpl implementa o AWSRepository com cache de clientes por região.
type AWSRepositoryImpl struct {
	profile         string
	bootstrapRegion string

	cfg         *aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do AWSRepository para um único profile.
// bootstrapRegion é usada nas chamadas de escopo da conta (identidade e lista de regiões).
func NewAWSRepository(profile, bootstrapRegion string) repository.AWSRepository {
	return &AWSRepositoryImpl{
		profile:         profile,
		bootstrapRegion: bootstrapRegion,
		clientCache:     make(map[string]interface{}),
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg != nil {
		return *r.cfg, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(r.profile))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", r.profile, err)
	}

	r.cfg = &cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, region, service string) (interface{}, error) {
	if region == "" {
		return nil, ErrRegionRequired
	}

	cacheKey := fmt.Sprintf("%s-%s-%s", r.profile, region, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()
	regionalCfg.Region = region

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(regionalCfg)
	case "ec2":
		client = ec2.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

// GetCallerIdentity returns the principal the profile authenticates as.
func (r *AWSRepositoryImpl) GetCallerIdentity(ctx context.Context) (entity.CallerIdentity, error) {
	client, err := r.getServiceClient(ctx, r.bootstrapRegion, "sts")
	if err != nil {
		return entity.CallerIdentity{}, err
	}
	stsClient := client.(*sts.Client)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return entity.CallerIdentity{}, wrapAPIError(fmt.Sprintf("get caller identity for profile %s", r.profile), err)
	}

	return entity.CallerIdentity{
		Profile:   r.profile,
		AccountID: aws.ToString(result.Account),
		Arn:       aws.ToString(result.Arn),
		UserID:    aws.ToString(result.UserId),
	}, nil
}

// GetAllRegions lists the regions enabled for the account, in API order.
func (r *AWSRepositoryImpl) GetAllRegions(ctx context.Context) ([]string, error) {
	client, err := r.getServiceClient(ctx, r.bootstrapRegion, "ec2")
	if err != nil {
		return nil, fmt.Errorf("could not create EC2 client to list regions: %w", err)
	}

	return describeRegions(ctx, client.(*ec2.Client))
}

// ForRegion returns the EC2 operations bound to region.
// A blank region is rejected, never resolved from the profile.
func (r *AWSRepositoryImpl) ForRegion(ctx context.Context, region string) (repository.RegionRepository, error) {
	if strings.TrimSpace(region) == "" {
		return nil, ErrRegionRequired
	}

	client, err := r.getServiceClient(ctx, region, "ec2")
	if err != nil {
		return nil, err
	}

	return newRegionRepository(region, client.(*ec2.Client)), nil
}

func describeRegions(ctx context.Context, client ec2API) ([]string, error) {
	regionsOutput, err := client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{AllRegions: aws.Bool(false)})
	if err != nil {
		return nil, wrapAPIError("describe regions", err)
	}

	regions := make([]string, 0, len(regionsOutput.Regions))
	for _, region := range regionsOutput.Regions {
		regions = append(regions, aws.ToString(region.RegionName))
	}
	return regions, nil
}
