package backend

import "context"

func (c *Client) Login(ctx context.Context, in LoginReq) (LoginResp, error) {
	var out LoginResp
	err := c.post(ctx, "/system/auth/login", in, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/system/auth/logout", nil, nil)
}

func (c *Client) PermissionInfo(ctx context.Context) (PermissionInfo, error) {
	var out PermissionInfo
	err := c.get(ctx, "/system/auth/get-permission-info", nil, &out)
	return out, err
}
