// Package sim is where visualizations plug into the dashboard.
//
// A [Visualization] is created from the [Registry] when the dashboard
// enters Visualizing(kind) and dropped when it returns to the main menu.
// On every render pass it draws into the main panel through a [Canvas];
// keys the dashboard does not use are offered to its HandleKey.
//
// The registry ships with a [Placeholder] per kind. Real scheduler, memory
// and deadlock visualizations replace them with Register.
package sim
