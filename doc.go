/*
Package kolladm maintains the deployment topology for a multi-host
OpenStack-on-containers installation and renders it as an ansible dynamic
inventory.

Data Model

A Host is a physical machine openstack is deployed onto.

A HostGroup is a named set of hosts. The deploy groups (compute, control,
network, storage, database) always exist and the compute group can never be
deleted. Group variables carry the connection settings (remote ssh user or
local connection) for all the servers in the group.

A Service is a deployable unit (nova, neutron, ...) associated with one or
more groups. A SubService is a finer-grained component of a service
(nova-api, nova-scheduler, ...) that is either associated with groups of its
own or inherits placement from its parent service, never both.

The Inventory is the aggregate owning all four collections. Every entity is
created and mutated through Inventory methods, which enforce the
cross-entity invariants, and the whole aggregate is persisted to a single
json document after each mutation batch. AnsibleJSON projects the graph
into the dynamic-inventory document consumed by the external ansible
runner.
*/
package kolladm
