// Package cupi is a client for the Cisco Unity Connection Provisioning
// Interface (CUPI), the REST API Unity Connection exposes under
// /vmrest for provisioning users, schedules and call handlers.
//
// Usage:
//
//	client := cupi.NewClient("192.168.200.11", "admin", "password",
//		cupi.WithInsecureTLS())
//
//	oid, err := client.GetOwnerLocationObjectID(ctx)
//	if err != nil {
//		// handle error
//	}
//	setOID, err := client.AddSchedule(ctx, "Weekdays", oid)
package cupi
