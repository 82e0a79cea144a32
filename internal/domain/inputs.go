package domain

type ContainsInput struct {
	IP     string
	Subnet string
	CIDR   string
}

type RegisterExceptionInput struct {
	Subnet  string
	CIDR    string
	OldZone string
	NewZone string
}
