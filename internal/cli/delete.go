package cli

import "context"

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter listing id to delete")
	if err != nil {
		return err
	}
	p, err := a.ownedProperty(ctx, id)
	if err != nil {
		return err
	}

	ok, err := GetConfirmation(a.reader, "Delete \""+p.Title+"\"?", false, a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.store.DeleteProperty(ctx, id); err != nil {
		return err
	}
	a.printf("Deleted %s\n", id)
	return nil
}
