package aws

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type apiResponse struct {
	response interface{}
	err      error
}

var errDummy = errors.New("fail")

func R(r interface{}, e error) *apiResponse {
	return &apiResponse{response: r, err: e}
}

// pages returns one response per call, repeating the last one
type pages []*apiResponse

func (p *pages) next() *apiResponse {
	if len(*p) == 0 {
		return R(nil, nil)
	}
	r := (*p)[0]
	if len(*p) > 1 {
		*p = (*p)[1:]
	}
	return r
}

type autoscalingMockOutputs struct {
	describeAutoScalingGroups    pages
	createAutoScalingGroup       *apiResponse
	deleteAutoScalingGroup       *apiResponse
	createOrUpdateTags           *apiResponse
	describeLaunchConfigurations pages
	createLaunchConfiguration    *apiResponse
	deleteLaunchConfiguration    *apiResponse
	putScalingPolicy             *apiResponse
	describePolicies             pages
}

type mockAutoScalingClient struct {
	AutoScalingAPI
	outputs autoscalingMockOutputs
	inputs  []interface{}
}

func (m *mockAutoScalingClient) record(in interface{}) {
	m.inputs = append(m.inputs, in)
}

func errOf(r *apiResponse) error {
	if r == nil {
		return nil
	}
	return r.err
}

func (m *mockAutoScalingClient) DescribeAutoScalingGroups(_ context.Context, in *autoscaling.DescribeAutoScalingGroupsInput, _ ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error) {
	m.record(in)
	r := m.outputs.describeAutoScalingGroups.next()
	if out, ok := r.response.(*autoscaling.DescribeAutoScalingGroupsOutput); ok {
		return out, r.err
	}
	return &autoscaling.DescribeAutoScalingGroupsOutput{}, r.err
}

func (m *mockAutoScalingClient) CreateAutoScalingGroup(_ context.Context, in *autoscaling.CreateAutoScalingGroupInput, _ ...func(*autoscaling.Options)) (*autoscaling.CreateAutoScalingGroupOutput, error) {
	m.record(in)
	return &autoscaling.CreateAutoScalingGroupOutput{}, errOf(m.outputs.createAutoScalingGroup)
}

func (m *mockAutoScalingClient) DeleteAutoScalingGroup(_ context.Context, in *autoscaling.DeleteAutoScalingGroupInput, _ ...func(*autoscaling.Options)) (*autoscaling.DeleteAutoScalingGroupOutput, error) {
	m.record(in)
	return &autoscaling.DeleteAutoScalingGroupOutput{}, errOf(m.outputs.deleteAutoScalingGroup)
}

func (m *mockAutoScalingClient) CreateOrUpdateTags(_ context.Context, in *autoscaling.CreateOrUpdateTagsInput, _ ...func(*autoscaling.Options)) (*autoscaling.CreateOrUpdateTagsOutput, error) {
	m.record(in)
	return &autoscaling.CreateOrUpdateTagsOutput{}, errOf(m.outputs.createOrUpdateTags)
}

func (m *mockAutoScalingClient) DescribeLaunchConfigurations(_ context.Context, in *autoscaling.DescribeLaunchConfigurationsInput, _ ...func(*autoscaling.Options)) (*autoscaling.DescribeLaunchConfigurationsOutput, error) {
	m.record(in)
	r := m.outputs.describeLaunchConfigurations.next()
	if out, ok := r.response.(*autoscaling.DescribeLaunchConfigurationsOutput); ok {
		return out, r.err
	}
	return &autoscaling.DescribeLaunchConfigurationsOutput{}, r.err
}

func (m *mockAutoScalingClient) CreateLaunchConfiguration(_ context.Context, in *autoscaling.CreateLaunchConfigurationInput, _ ...func(*autoscaling.Options)) (*autoscaling.CreateLaunchConfigurationOutput, error) {
	m.record(in)
	return &autoscaling.CreateLaunchConfigurationOutput{}, errOf(m.outputs.createLaunchConfiguration)
}

func (m *mockAutoScalingClient) DeleteLaunchConfiguration(_ context.Context, in *autoscaling.DeleteLaunchConfigurationInput, _ ...func(*autoscaling.Options)) (*autoscaling.DeleteLaunchConfigurationOutput, error) {
	m.record(in)
	return &autoscaling.DeleteLaunchConfigurationOutput{}, errOf(m.outputs.deleteLaunchConfiguration)
}

func (m *mockAutoScalingClient) PutScalingPolicy(_ context.Context, in *autoscaling.PutScalingPolicyInput, _ ...func(*autoscaling.Options)) (*autoscaling.PutScalingPolicyOutput, error) {
	m.record(in)
	r := m.outputs.putScalingPolicy
	if r == nil {
		return &autoscaling.PutScalingPolicyOutput{}, nil
	}
	if out, ok := r.response.(*autoscaling.PutScalingPolicyOutput); ok {
		return out, r.err
	}
	return nil, r.err
}

func (m *mockAutoScalingClient) DescribePolicies(_ context.Context, in *autoscaling.DescribePoliciesInput, _ ...func(*autoscaling.Options)) (*autoscaling.DescribePoliciesOutput, error) {
	m.record(in)
	r := m.outputs.describePolicies.next()
	if out, ok := r.response.(*autoscaling.DescribePoliciesOutput); ok {
		return out, r.err
	}
	return &autoscaling.DescribePoliciesOutput{}, r.err
}

type elbMockOutputs struct {
	describeLoadBalancers pages
	createLoadBalancer    *apiResponse
	configureHealthCheck  *apiResponse
	deleteLoadBalancer    *apiResponse
}

type mockELBClient struct {
	ELBAPI
	outputs elbMockOutputs
	inputs  []interface{}
}

func (m *mockELBClient) DescribeLoadBalancers(_ context.Context, in *elb.DescribeLoadBalancersInput, _ ...func(*elb.Options)) (*elb.DescribeLoadBalancersOutput, error) {
	m.inputs = append(m.inputs, in)
	r := m.outputs.describeLoadBalancers.next()
	if out, ok := r.response.(*elb.DescribeLoadBalancersOutput); ok {
		return out, r.err
	}
	return &elb.DescribeLoadBalancersOutput{}, r.err
}

func (m *mockELBClient) CreateLoadBalancer(_ context.Context, in *elb.CreateLoadBalancerInput, _ ...func(*elb.Options)) (*elb.CreateLoadBalancerOutput, error) {
	m.inputs = append(m.inputs, in)
	r := m.outputs.createLoadBalancer
	if r == nil {
		return &elb.CreateLoadBalancerOutput{}, nil
	}
	if out, ok := r.response.(*elb.CreateLoadBalancerOutput); ok {
		return out, r.err
	}
	return nil, r.err
}

func (m *mockELBClient) ConfigureHealthCheck(_ context.Context, in *elb.ConfigureHealthCheckInput, _ ...func(*elb.Options)) (*elb.ConfigureHealthCheckOutput, error) {
	m.inputs = append(m.inputs, in)
	return &elb.ConfigureHealthCheckOutput{}, errOf(m.outputs.configureHealthCheck)
}

func (m *mockELBClient) DeleteLoadBalancer(_ context.Context, in *elb.DeleteLoadBalancerInput, _ ...func(*elb.Options)) (*elb.DeleteLoadBalancerOutput, error) {
	m.inputs = append(m.inputs, in)
	return &elb.DeleteLoadBalancerOutput{}, errOf(m.outputs.deleteLoadBalancer)
}

type mockELBV2Client struct {
	ELBV2API
	describeTargetGroups pages
	inputs               []*elbv2.DescribeTargetGroupsInput
}

func (m *mockELBV2Client) DescribeTargetGroups(_ context.Context, in *elbv2.DescribeTargetGroupsInput, _ ...func(*elbv2.Options)) (*elbv2.DescribeTargetGroupsOutput, error) {
	m.inputs = append(m.inputs, in)
	r := m.describeTargetGroups.next()
	if out, ok := r.response.(*elbv2.DescribeTargetGroupsOutput); ok {
		return out, r.err
	}
	return &elbv2.DescribeTargetGroupsOutput{}, r.err
}

type mockEC2Client struct {
	EC2API
	describeRegions *apiResponse
	calls           int
}

func (m *mockEC2Client) DescribeRegions(_ context.Context, _ *ec2.DescribeRegionsInput, _ ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error) {
	m.calls++
	if m.describeRegions == nil {
		return &ec2.DescribeRegionsOutput{}, nil
	}
	if out, ok := m.describeRegions.response.(*ec2.DescribeRegionsOutput); ok {
		return out, m.describeRegions.err
	}
	return nil, m.describeRegions.err
}

type mockSSMClient struct {
	SSMAPI
	getParameter *apiResponse
	inputs       []*ssm.GetParameterInput
}

func (m *mockSSMClient) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	m.inputs = append(m.inputs, in)
	if out, ok := m.getParameter.response.(*ssm.GetParameterOutput); ok {
		return out, m.getParameter.err
	}
	return nil, m.getParameter.err
}

type mockSTSClient struct {
	STSAPI
	getCallerIdentity *apiResponse
}

func (m *mockSTSClient) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if out, ok := m.getCallerIdentity.response.(*sts.GetCallerIdentityOutput); ok {
		return out, m.getCallerIdentity.err
	}
	return nil, m.getCallerIdentity.err
}

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

var validEnv = env(map[string]string{
	AccessKeyEnv: "AKIAEXAMPLE",
	SecretKeyEnv: "secret",
})
